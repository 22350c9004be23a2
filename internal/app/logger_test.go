package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFromConfig(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logLevel(&Config{LogLevel: in}), in)
	}
	assert.Equal(t, slog.LevelInfo, logLevel(nil))
}

func TestNewLoggerHonoursLevel(t *testing.T) {
	ctx := context.Background()

	logger := NewLogger(&Config{LogLevel: "warn"})
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))

	logger = NewLogger(&Config{LogFormat: "json", LogLevel: "debug"})
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}
