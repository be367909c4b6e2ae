// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLevel slog.Level
		wantOK    bool
	}{
		{"debug", "debug", slog.LevelDebug, true},
		{"info upper case", "INFO", slog.LevelInfo, true},
		{"warn", "warn", slog.LevelWarn, true},
		{"error", "Error", slog.LevelError, true},
		{"unknown falls back to info", "verbose", slog.LevelInfo, false},
		{"empty falls back to info", "", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{Port: 8080, LogLevel: "warn"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("filtered out")
	l.Warn("kept", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])

	// Setup installs the logger as the process default
	assert.Same(t, l, slog.Default())
}

func TestFromContext(t *testing.T) {
	t.Run("returns fallback when context has no logger", func(t *testing.T) {
		fallback, _ := logger.GetTestLogger(t)
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("returns logger stored in context", func(t *testing.T) {
		fallback, _ := logger.GetTestLogger(t)
		stored, _ := logger.GetTestLogger(t)

		ctx := logger.WithLogger(context.Background(), stored)
		assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("attaches request id", func(t *testing.T) {
		l, buf := logger.GetTestLogger(t)
		ctx := logger.WithRequestID(logger.WithLogger(context.Background(), l), "req-123")

		logger.FromContext(ctx).Info("hello")

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-123", entries[0]["request_id"])
	})
}
