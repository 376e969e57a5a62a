package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level is any slog level name
// ("debug", "info", "warn", "error", optionally with an offset such as
// "info+2"); "warning" and "err" are accepted as aliases. Format selects the
// "text" (default) or "json" handler.
//
// When File is set, records are additionally written to that path and the
// file is rotated according to the MaxSizeMB, MaxBackups and MaxAgeDays
// limits.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`

	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"30"`
}

// SlogLevel parses Level. Unknown levels fall back to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch name {
	case "warning":
		name = "warn"
	case "err":
		name = "error"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}
