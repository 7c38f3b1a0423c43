package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.AccessTokenSignKey == "" || cfg.Auth.RefreshTokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	// the two secrets must be independent: compromise of one must not
	// imply compromise of the other
	if cfg.Auth.AccessTokenSignKey == cfg.Auth.RefreshTokenSignKey {
		return ErrInvalidAuthConfigs
	}

	if cfg.Mail.Host == "" || cfg.Mail.Username == "" {
		return ErrInvalidMailConfigs
	}

	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}

	return nil
}
