package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty title).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidNumericConfigs indicates an unknown number kind or a radix
	// outside [2, 36].
	ErrInvalidNumericConfigs = errors.New("invalid numeric configuration")
	// ErrInvalidUIConfigs indicates invalid layout settings
	// (for example, a field width too small to render an input).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
