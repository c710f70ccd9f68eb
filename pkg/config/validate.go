package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags via go-playground/validator and a handful
// of cross-field rules the tags alone cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	for _, name := range cfg.Security.EnabledPolicies {
		if _, ok := ResolvePolicyURI(name); !ok {
			return fmt.Errorf("security.enabled_policies: unknown policy %q", name)
		}
	}

	if cfg.Security.MaxTrustListSize > 0 && cfg.Security.MaxRejectedListSize > cfg.Security.MaxTrustListSize {
		return fmt.Errorf("security.max_rejected_list_size (%d) must not exceed security.max_trust_list_size (%d)",
			cfg.Security.MaxRejectedListSize, cfg.Security.MaxTrustListSize)
	}

	return nil
}
