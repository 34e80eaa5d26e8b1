package config

import "errors"

var (
	// ErrParsingConfig wraps failures reported by the env parser.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile wraps failures reading .env files.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
