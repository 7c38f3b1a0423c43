package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (missing sign keys, or access and refresh keys that are not
	// independent).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidMailConfigs indicates invalid outbound mail settings
	// (for example, a missing SMTP host or account).
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
