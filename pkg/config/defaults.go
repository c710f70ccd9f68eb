package config

import (
	"github.com/marmos91/uacore/pkg/security/certgroup"
	"github.com/marmos91/uacore/pkg/security/policy"
)

// ApplyDefaults sets default values for any unspecified configuration
// fields.
//
// Default Strategy:
//   - Zero values (0, "", nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyCodecDefaults(&cfg.Codec)
	applySecurityDefaults(&cfg.Security)
	applyMetricsDefaults(&cfg.Metrics)
}

// applyLoggingDefaults sets logging defaults.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyCodecDefaults fills unset limits with the same defaults
// ua.DefaultLimits uses, so a zero-value CodecLimits behaves identically
// to calling ua.NewDecoder with no explicit limits.
func applyCodecDefaults(cfg *CodecLimits) {
	if cfg.MaxArrayLength == 0 {
		cfg.MaxArrayLength = 65535
	}
	if cfg.MaxStringLength == 0 {
		cfg.MaxStringLength = 1 << 20
	}
	if cfg.MaxByteStringLength == 0 {
		cfg.MaxByteStringLength = 1 << 20
	}
	if cfg.MaxMessageSize == 0 {
		cfg.MaxMessageSize = 1 << 22
	}
	if cfg.MaxNestingDepth == 0 {
		cfg.MaxNestingDepth = 100
	}
}

// applySecurityDefaults sets trust-list size limits and the default
// enabled policy set.
func applySecurityDefaults(cfg *SecurityConfig) {
	if len(cfg.EnabledPolicies) == 0 {
		cfg.EnabledPolicies = []string{
			policy.URINone,
			policy.URIBasic256Sha256,
			policy.URIAes128Sha256RsaOaep,
			policy.URIAes256Sha256RsaPss,
		}
	}
	for i, name := range cfg.EnabledPolicies {
		if uri, ok := ResolvePolicyURI(name); ok {
			cfg.EnabledPolicies[i] = uri
		}
	}
	if cfg.MaxTrustListSize == 0 {
		cfg.MaxTrustListSize = certgroup.DefaultMaxTrustListSize
	}
	if cfg.MaxRejectedListSize == 0 {
		cfg.MaxRejectedListSize = certgroup.DefaultMaxRejectedListSize
	}
	// RejectEmptyTrustList and RequireApplicationURIMatch default to
	// false here: accept-with-warning. For RejectEmptyTrustList this
	// matches certgroup.NewGroup; NewGroup sets RequireApplicationURIMatch
	// to true.
}

// applyMetricsDefaults sets metrics server defaults.
func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Enabled && cfg.Port == 0 {
		cfg.Port = 9090
	}
}

// GetDefaultConfig returns a Config struct with all default values
// applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
