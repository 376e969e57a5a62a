package configs

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"info+2":  slog.LevelInfo + 2,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerFormat(t *testing.T) {
	assert.Equal(t, "json", Logger{Format: " JSON "}.SlogFormat())
	assert.Equal(t, "text", Logger{Format: "logfmt"}.SlogFormat())
}
