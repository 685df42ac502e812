package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// SQL driver configured without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates invalid terminal-client settings
	// (for example, a missing server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
