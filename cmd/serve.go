package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "srportal/internal/adapter/http"
	"srportal/internal/adapter/memory"
	"srportal/internal/adapter/postgres"
	redisadapter "srportal/internal/adapter/redis"
	"srportal/internal/adapter/usecase"
	"srportal/internal/core/port"
	"srportal/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// serve optionally runs database migrations, initializes the database pool,
// the import store and the use cases, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func serve(ctx context.Context) error {
	if cfg.Psql.RunMigrations {
		if version, err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	store, closeStore, err := importStore(ctx)
	if err != nil {
		logger.Error("import store error", slog.Any("error", err))
		return err
	}
	defer closeStore()

	var (
		clients     = postgres.NewClientRepository(pool)
		analytics   = postgres.NewAnalyticsRepository(pool)
		commercials = postgres.NewCommercialRepository(pool)
		baselines   = postgres.NewBaselineRepository(pool)
		pricing     = postgres.NewPricingRepository(pool)
		metrics     = httpadapter.NewMetrics()
	)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Catalog:   usecase.NewCatalogUseCase(clients, analytics, commercials),
		Baselines: usecase.NewBaselineUseCase(baselines),
		Pricing:   usecase.NewPricingUseCase(pricing, logger, metrics),
		Imports:   usecase.NewImportUseCase(store, baselines, pricing, cfg.Import, logger),
	}, metrics, cfg.Import.MaxFileSize, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
		exitCode = 1
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return nil
}

// importStore picks Redis when enabled and the in-process store otherwise.
func importStore(ctx context.Context) (port.ImportStore, func(), error) {
	if !cfg.Redis.Enabled {
		store := memory.NewImportStore(time.Minute)
		logger.Info("import store: memory")
		return store, func() { _ = store.Close() }, nil
	}
	client, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("import store: redis", slog.String("addr", cfg.Redis.Addr))
	return redisadapter.NewImportStore(client), func() { _ = client.Close() }, nil
}
