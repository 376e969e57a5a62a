package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"srportal/internal/adapter/postgres"
	"srportal/internal/adapter/usecase"
	"srportal/internal/config"
	"srportal/internal/core/domain"
	"srportal/internal/db"
	"srportal/internal/logging"
)

var (
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer

	// exitCode is set by serve when it stops on a signal.
	exitCode int
)

// main is the entry point of the back office. Configuration comes from the
// environment; the subcommand decides whether to serve the API or run a
// one-off maintenance task.
func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		} else {
			logger.Error("command failed", slog.Any("error", err))
			_ = logCloser.Close()
		}
		os.Exit(1)
	}
	os.Exit(exitCode)
}

var rootCmd = &cobra.Command{
	Use:           "srportal",
	Short:         "Campaign and TV pricing back office",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, logCloser = logging.New(cfg.Log, cfg.Env)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	migrateCmd.Flags().Bool("down", false, "revert every migration instead of applying them")
	assignCmd.Flags().String("date", "", "pricing sheet date (YYYY-MM-DD)")
	_ = assignCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, assignCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		down, _ := cmd.Flags().GetBool("down")
		run, action := db.Migrate, "migrations applied"
		if down {
			run, action = db.Rollback, "migrations reverted"
		}
		version, err := run(cfg.Psql.Addr.String())
		if err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info(action, slog.Uint64("version", uint64(version)))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo records into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()

		summary, err := db.Seed(cmd.Context(), pool)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return err
		}
		if summary.Clients == 0 {
			logger.Info("database already has clients, nothing seeded")
			return nil
		}
		logger.Info("demo data seeded",
			slog.Int("clients", summary.Clients),
			slog.Int("baselines", summary.Baselines),
			slog.Int("prices", summary.Prices),
			slog.Int("breaks", summary.Breaks),
		)
		return nil
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign-prices",
	Short: "Price every break in the window of a pricing sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("date")
		date, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", raw)
		}

		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()

		svc := usecase.NewPricingUseCase(postgres.NewPricingRepository(pool), logger, nil)
		res, err := svc.AssignPricesToBreaks(cmd.Context(), date)
		var assignErr *domain.PriceAssignmentError
		if errors.As(err, &assignErr) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d break(s) could not be priced, nothing was updated:\n", len(assignErr.Unmatched))
			for _, u := range assignErr.Unmatched {
				fmt.Fprintf(out, "  break %d  station %d  %s  %ds  %s\n",
					u.Break.ID, u.Break.StationID, u.Break.Time.Format("2006-01-02 15:04"), u.Break.SpotDuration, u.Reason)
			}
			return err
		}
		if err != nil {
			return err
		}

		end := "open"
		if res.WindowEnd != nil {
			end = res.WindowEnd.Format(domain.DateLayout)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "priced %d break(s) from %d price row(s), window %s to %s\n",
			res.Breaks, res.Prices, res.WindowStart.Format(domain.DateLayout), end)
		return nil
	},
}
