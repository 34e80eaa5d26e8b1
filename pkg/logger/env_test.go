package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := logger.ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	t.Run("level overrides preset", func(t *testing.T) {
		cfg := logger.Config{Level: "error", Env: "development", Service: "svc"}
		opts, err := cfg.Options()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(append(opts, logger.WithOutput(buf))...)
		log.Warn("hidden")
		assert.Empty(t, buf.String())
		log.Error("shown")
		assert.Contains(t, buf.String(), "service=svc")
	})

	t.Run("format overrides preset", func(t *testing.T) {
		cfg := logger.Config{Format: "JSON", Env: "development", Service: "svc"}
		opts, err := cfg.Options()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(append(opts, logger.WithOutput(buf))...)
		log.Debug("msg")
		assert.Contains(t, buf.String(), `"env":"development"`)
	})

	t.Run("staging environment", func(t *testing.T) {
		cfg := logger.Config{Env: "staging", Service: "svc"}
		opts, err := cfg.Options()
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(append(opts, logger.WithOutput(buf))...)
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("msg")
		assert.Contains(t, buf.String(), `"env":"staging"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.Config{Level: "loud"}.Options()
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.Config{Format: "xml"}.Options()
		assert.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVICE_NAME", "signup")

	buf := &bytes.Buffer{}
	log, err := logger.FromEnv(logger.WithOutput(buf))
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), `"service":"signup"`)
	assert.Contains(t, buf.String(), `"env":"production"`)
}
