// Package metrics provides an optional Prometheus registry and a
// nil-when-disabled metrics recorder for the codec and security layers.
//
// Callers that never call InitRegistry get a nil SecurityMetrics from
// NewSecurityMetrics and skip recording when it is nil, so
// instrumentation carries zero overhead when metrics are disabled.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
)

// InitRegistry creates and installs the process-wide Prometheus
// registry. Must be called before NewSecurityMetrics for metrics to be
// collected.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	registry = prometheus.NewRegistry()
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// GetRegistry returns the process-wide registry, or nil if metrics are
// disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// ResetForTest discards the process-wide registry. Test-only.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
}

// SecurityMetrics records codec and certificate-verification outcomes.
// Every method must tolerate a nil receiver so disabled metrics cost
// nothing beyond the interface call.
type SecurityMetrics interface {
	// RecordDecodeError increments the decode-error counter for the
	// given failure kind (e.g. "bad_string_length", "max_array_length",
	// "max_nesting_depth").
	RecordDecodeError(kind string)

	// RecordEncodeError increments the encode-error counter for kind.
	RecordEncodeError(kind string)

	// RecordVerification increments the certificate-verification
	// counter for the given OPC UA status code outcome, e.g. "Good" or
	// "BadCertificateUntrusted".
	RecordVerification(outcome string)

	// SetRejectedListSize sets the current size of a certificate
	// group's rejected-certificate list.
	SetRejectedListSize(n int)

	// RecordTrustListReload increments the trust-list reload counter.
	RecordTrustListReload()
}

// newSecurityMetrics is set by pkg/metrics/prometheus's init, avoiding a
// direct import of the prometheus subpackage from here.
var newSecurityMetrics func() SecurityMetrics

// RegisterSecurityMetricsConstructor registers the Prometheus security
// metrics constructor. Called by pkg/metrics/prometheus during package
// initialization.
func RegisterSecurityMetricsConstructor(constructor func() SecurityMetrics) {
	newSecurityMetrics = constructor
}

// NewSecurityMetrics returns a Prometheus-backed SecurityMetrics, or nil
// if metrics are disabled.
func NewSecurityMetrics() SecurityMetrics {
	if !IsEnabled() || newSecurityMetrics == nil {
		return nil
	}
	return newSecurityMetrics()
}
