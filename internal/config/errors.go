package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates an unusable platform base URL or
	// a non-positive call timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidMetricsConfigs indicates a metrics path not starting with "/".
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
)
