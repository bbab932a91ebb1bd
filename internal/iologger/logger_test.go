package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/genes/pkg/config"
	"github.com/gnames/genes/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}

	require.NoError(t, Init(dir, cfg))
	slog.Debug("curation started", "tax_id", 9606)

	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"curation started"`)
	assert.Contains(t, string(content), `"tax_id":9606`)
}

func TestInitLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "warn", Destination: "file"}

	require.NoError(t, Init(dir, cfg))
	slog.Info("hidden")
	slog.Warn("shown")

	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "msg=shown")
}

func TestInitBadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Destination: "file"}

	err := Init(dir, cfg)
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}
