// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses
// the environment into a struct using field tags:
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load reads the default .env file once per process and caches every
// successfully parsed type, so later calls for the same type return the
// cached copy. LoadEnv reads specific files and ResetCache drops the cache,
// which is mostly useful in tests.
package config
