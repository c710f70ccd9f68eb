package config

import (
	"path/filepath"
	"testing"
)

func TestGetDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestSaveConfigThenLoad(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "DEBUG"
	cfg.Security.RejectEmptyTrustList = true

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Logging.Level != "DEBUG" {
		t.Fatalf("Logging.Level = %q, want DEBUG", loaded.Logging.Level)
	}
	if !loaded.Security.RejectEmptyTrustList {
		t.Fatalf("Security.RejectEmptyTrustList not preserved across save/load")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Codec.MaxMessageSize != 1<<22 {
		t.Fatalf("MaxMessageSize = %d, want default", cfg.Codec.MaxMessageSize)
	}
}

func TestResolvePolicyURI(t *testing.T) {
	uri, ok := ResolvePolicyURI("basic256sha256")
	if !ok {
		t.Fatalf("ResolvePolicyURI(basic256sha256) not found")
	}
	if uri != "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256" {
		t.Fatalf("ResolvePolicyURI = %q", uri)
	}

	if _, ok := ResolvePolicyURI("http://example.com/already-a-uri"); !ok {
		t.Fatalf("a URI-shaped name should pass through unresolved")
	}

	if _, ok := ResolvePolicyURI("not-a-real-policy"); ok {
		t.Fatalf("unknown policy name should not resolve")
	}
}

func TestCodecLimitsToLimits(t *testing.T) {
	c := CodecLimits{MaxArrayLength: 10, MaxNestingDepth: 4}
	l := c.ToLimits()
	if l.MaxArrayLength != 10 || l.MaxNestingDepth != 4 {
		t.Fatalf("ToLimits did not carry values through: %+v", l)
	}
}
