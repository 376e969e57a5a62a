package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srportal/internal/config/configs"
)

func TestNewHandlerHonoursFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, configs.Logger{Level: "warn", Format: "JSON"})
	logger := slog.New(h)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("pricing import", slog.Int("rows", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "pricing import", rec["msg"])
	assert.EqualValues(t, 3, rec["rows"])
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srportal.log")
	logger, closer := New(configs.Logger{Level: "info", Format: "text", File: path, MaxSizeMB: 1}, "test")

	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "env=test")
}
