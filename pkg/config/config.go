// Package config loads and validates the static configuration the core
// needs: decoder limits, which security policies are enabled, and where
// the trust material for certificate verification lives.
//
// This is not a session or server configuration. It covers only what the
// binary built-in type kernel, the codec, and the security layer need
// configured before they can run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/marmos91/uacore/pkg/security/policy"
	"github.com/marmos91/uacore/pkg/ua"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
//
// Configuration sources, in order of precedence:
//  1. Environment variables (UACORE_*)
//  2. Configuration file (YAML)
//  3. Default values
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Codec configures the generic codec's decode limits.
	Codec CodecLimits `mapstructure:"codec" yaml:"codec"`

	// Security configures the policy engine and certificate group trust
	// material.
	Security SecurityConfig `mapstructure:"security" yaml:"security"`

	// Metrics contains Prometheus metrics server configuration.
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized
	// to uppercase).
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format is either "text" or "json".
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is either "stdout", "stderr", or a file path.
	Output string `mapstructure:"output" yaml:"output"`
}

// CodecLimits mirrors ua.Limits with config tags attached. Zero fields
// mean "unlimited" once converted, matching ua.Limits' own convention.
type CodecLimits struct {
	MaxArrayLength      int32 `mapstructure:"max_array_length" validate:"gte=0" yaml:"max_array_length"`
	MaxStringLength     int32 `mapstructure:"max_string_length" validate:"gte=0" yaml:"max_string_length"`
	MaxByteStringLength int32 `mapstructure:"max_byte_string_length" validate:"gte=0" yaml:"max_byte_string_length"`
	MaxMessageSize      int32 `mapstructure:"max_message_size" validate:"gte=0" yaml:"max_message_size"`
	MaxNestingDepth     int32 `mapstructure:"max_nesting_depth" validate:"gte=0" yaml:"max_nesting_depth"`
}

// ToLimits converts CodecLimits to the ua.Limits the decoder actually
// consumes.
func (c CodecLimits) ToLimits() ua.Limits {
	return ua.Limits{
		MaxArrayLength:      c.MaxArrayLength,
		MaxStringLength:     c.MaxStringLength,
		MaxByteStringLength: c.MaxByteStringLength,
		MaxMessageSize:      c.MaxMessageSize,
		MaxNestingDepth:     c.MaxNestingDepth,
	}
}

// SecurityConfig configures the policy engine and the certificate trust
// material used to verify peer certificates.
type SecurityConfig struct {
	// EnabledPolicies lists the SecurityPolicy URIs this application will
	// accept or offer. Short names (none, basic128rsa15, basic256,
	// basic256sha256, aes128sha256rsaoaep, aes256sha256rsapss) are also
	// accepted and expanded to full URIs by ApplyDefaults.
	EnabledPolicies []string `mapstructure:"enabled_policies" yaml:"enabled_policies"`

	// TrustListPath is a directory of DER or PEM encoded certificates
	// trusted directly as peer certificates or as CAs.
	TrustListPath string `mapstructure:"trust_list_path" yaml:"trust_list_path"`

	// IssuerListPath is a directory of DER or PEM encoded intermediate CA
	// certificates used only for chain building, never trusted directly.
	IssuerListPath string `mapstructure:"issuer_list_path" yaml:"issuer_list_path"`

	// CRLPath is a directory of DER or PEM encoded certificate revocation
	// lists.
	CRLPath string `mapstructure:"crl_path" yaml:"crl_path"`

	// MaxTrustListSize bounds the combined trusted+issuer certificate
	// count. 0 means certgroup.DefaultMaxTrustListSize.
	MaxTrustListSize int `mapstructure:"max_trust_list_size" validate:"gte=0" yaml:"max_trust_list_size"`

	// MaxRejectedListSize bounds the rejected-certificate FIFO. 0 means
	// certgroup.DefaultMaxRejectedListSize.
	MaxRejectedListSize int `mapstructure:"max_rejected_list_size" validate:"gte=0" yaml:"max_rejected_list_size"`

	// RejectEmptyTrustList, when true, fails verification with
	// BadCertificateUntrusted instead of accepting with a warning when the
	// trust list has no entries.
	RejectEmptyTrustList bool `mapstructure:"reject_empty_trust_list" yaml:"reject_empty_trust_list"`

	// RequireApplicationURIMatch, when true, fails application URI
	// verification instead of downgrading a mismatch to a warning.
	RequireApplicationURIMatch bool `mapstructure:"require_application_uri_match" yaml:"require_application_uri_match"`

	// CertificateLifetime is how long generated certificates and CSRs are
	// expected to remain valid for, informational only (the csr package
	// does not set NotAfter itself).
	CertificateLifetime time.Duration `mapstructure:"certificate_lifetime" yaml:"certificate_lifetime"`
}

// MetricsConfig contains Prometheus metrics server configuration.
type MetricsConfig struct {
	// Enabled toggles metric registration. When false, all metrics
	// recorders are no-ops.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port the /metrics endpoint listens on.
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// policyNameAliases maps short policy names to their full SecurityPolicy
// URIs, accepted in EnabledPolicies for convenience.
var policyNameAliases = map[string]string{
	"none":                policy.URINone,
	"basic128rsa15":       policy.URIBasic128Rsa15,
	"basic256":            policy.URIBasic256,
	"basic256sha256":      policy.URIBasic256Sha256,
	"aes128sha256rsaoaep": policy.URIAes128Sha256RsaOaep,
	"aes256sha256rsapss":  policy.URIAes256Sha256RsaPss,
}

// ResolvePolicyURI expands a short policy name to its full URI. Values
// that already look like a URI are returned unchanged.
func ResolvePolicyURI(name string) (string, bool) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name, true
	}
	uri, ok := policyNameAliases[strings.ToLower(name)]
	return uri, ok
}

// Load loads configuration from file, environment, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	if !configFileFound {
		cfg := GetDefaultConfig()
		return cfg, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration with helpful error messages when the file
// is missing.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		if !DefaultConfigExists() {
			return nil, fmt.Errorf("no configuration file found at default location: %s\n\n"+
				"Please create one first, or specify a custom config file:\n"+
				"  uacertctl --config /path/to/config.yaml",
				GetDefaultConfigPath())
		}
		configPath = GetDefaultConfigPath()
	} else if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// SaveConfig saves the configuration to path in YAML format.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setupViper configures viper's environment variable and config file
// search behavior.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("UACORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		configDir := getConfigDir()
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists. Returns
// (fileFound, error).
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// configDecodeHooks returns the combined mapstructure decode hook used to
// unmarshal config values.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
	)
}

// durationDecodeHook converts strings like "30s" or raw numbers
// (nanoseconds) into time.Duration fields.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory: $XDG_CONFIG_HOME/uacore,
// falling back to ~/.config/uacore, or "." if the home directory cannot be
// determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "uacore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "uacore")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists reports whether a config file exists at the default
// location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	return getConfigDir()
}
