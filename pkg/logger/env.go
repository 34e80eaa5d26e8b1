package logger

import (
	"fmt"
	"log/slog"
	"strings"

	appconfig "github.com/dmitrymomot/inputkit/pkg/config"
)

// Config is the environment-driven logger configuration.
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"inputkit"`
}

// Options converts the configuration into logger options. Explicit level and
// format settings override the environment preset.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithEnvironment(c.Env, c.Service)}

	if c.Level != "" {
		level, err := ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}

	switch Format(strings.ToLower(c.Format)) {
	case "":
	case FormatJSON:
		opts = append(opts, WithJSONFormatter())
	case FormatText:
		opts = append(opts, WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", c.Format, FormatJSON, FormatText)
	}

	return opts, nil
}

// FromEnv loads Config from the environment through the config package and
// builds a logger. Extra options are applied last.
func FromEnv(extra ...Option) (*slog.Logger, error) {
	var cfg Config
	if err := appconfig.Load(&cfg); err != nil {
		return nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return New(append(opts, extra...)...), nil
}

// ParseLevel maps debug, info, warn/warning and error to slog levels.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}
