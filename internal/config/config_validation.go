package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server depends on at startup. The signing secret and the
// database DSN are the two values no fallback can supply.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.ResetCodeTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
