package config

import "testing"

func TestValidateInvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

func TestValidateInvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid log format")
	}
}

func TestValidateUnknownPolicyName(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Security.EnabledPolicies = []string{"not-a-policy"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unknown policy name")
	}
}

func TestValidateRejectedListLargerThanTrustList(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Security.MaxTrustListSize = 10
	cfg.Security.MaxRejectedListSize = 20
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error when rejected list exceeds trust list size")
	}
}

func TestValidateMetricsPortOutOfRange(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Port = 70000
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for out-of-range metrics port")
	}
}
