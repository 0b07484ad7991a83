package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/gospelpath-backend/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)
	logger.Info("verse served", slog.String("reference", "John 3:16"))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "verse served", m["msg"])
	assert.Equal(t, "John 3:16", m["reference"])
	assert.Equal(t, "gospelpath", m["app"])
	assert.NotContains(t, m, "source")
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", Format: "text"}, &buf)
	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "source=")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{" error ", slog.LevelError, slog.LevelWarn},
		{"verbose", slog.LevelInfo, slog.LevelDebug},
		{"", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(config.LogConfig{Level: tt.level, Format: "json"}, &buf)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tt.enabled))
			assert.False(t, logger.Enabled(ctx, tt.disabled))
		})
	}
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	v := BuildVersion()
	assert.Contains(t, v, Version)
	assert.Contains(t, v, "commit: "+Commit)
}
