package metrics

import "testing"

func TestDisabledByDefault(t *testing.T) {
	ResetForTest()
	if IsEnabled() {
		t.Fatal("metrics should be disabled until InitRegistry is called")
	}
	if NewSecurityMetrics() != nil {
		t.Fatal("NewSecurityMetrics should return nil when disabled")
	}
}

func TestInitRegistryEnables(t *testing.T) {
	ResetForTest()
	reg := InitRegistry()
	if reg == nil {
		t.Fatal("InitRegistry returned nil")
	}
	if !IsEnabled() {
		t.Fatal("IsEnabled should be true after InitRegistry")
	}
	if GetRegistry() != reg {
		t.Fatal("GetRegistry should return the registry InitRegistry created")
	}
	ResetForTest()
}

func TestZeroSecurityMetricsIsNil(t *testing.T) {
	var m SecurityMetrics
	// NewSecurityMetrics returns a plain nil interface when disabled and
	// callers compare against nil before recording, so the zero value of
	// the interface must be that same nil.
	if m != nil {
		t.Fatal("zero value of the interface should be nil")
	}
}
