package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() for programmatic handling.
var (
	// ErrNoInput is returned when no input filename is given.
	ErrNoInput = errors.New("no input file specified: provide a filename as the first argument")

	// ErrInvalidFormat is returned when the output format is not supported.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidTop is returned when the top-N limit is negative.
	// Use 0 to list every word.
	ErrInvalidTop = errors.New("invalid top limit: must be non-negative")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid worker count: must be positive")

	// ErrInvalidFilterErrorPolicy is returned when the filter error policy
	// is neither "abort" nor "skip".
	ErrInvalidFilterErrorPolicy = errors.New("invalid filter error policy: must be \"abort\" or \"skip\"")

	// ErrEmptyEncoding is returned when the encoding name is blank.
	ErrEmptyEncoding = errors.New("invalid encoding: must not be empty")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
