package logger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env, WithOutput(io.Discard))
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	var buf bytes.Buffer
	logger := setupPrettySlog(&buf)
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger.With(slog.String("component", "test")).Error("не удалось сохранить заметку", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "не удалось сохранить заметку")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "component")
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()

	// Prod - только INFO и выше
	prodLogger := New(config.EnvProd, WithOutput(io.Discard))
	assert.False(t, prodLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, prodLogger.Enabled(ctx, slog.LevelInfo))

	// Prod с --debug - DEBUG и выше
	debugLogger := New(config.EnvProd, WithOutput(io.Discard), WithDebug(true))
	assert.True(t, debugLogger.Enabled(ctx, slog.LevelDebug))

	// Local - DEBUG (pretty)
	localLogger := New(config.EnvLocal, WithOutput(io.Discard))
	assert.True(t, localLogger.Enabled(ctx, slog.LevelDebug))
}

func TestDiscard(t *testing.T) {
	assert.NotNil(t, Discard())
}
