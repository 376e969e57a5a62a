package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"srportal/internal/config/configs"
)

// New builds the application logger. Records always go to stdout; when a log
// file is configured they are also written to a size-rotated file. The
// returned closer releases the file and is a no-op otherwise.
func New(cfg configs.Logger, env string) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}
	return slog.New(newHandler(out, cfg)).With(slog.String("env", env)), closer
}

func newHandler(w io.Writer, cfg configs.Logger) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
