// Package prometheus implements pkg/metrics's SecurityMetrics interface
// on top of github.com/prometheus/client_golang.
package prometheus

import (
	"github.com/marmos91/uacore/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func init() {
	metrics.RegisterSecurityMetricsConstructor(newSecurityMetrics)
}

type securityMetrics struct {
	decodeErrors     *prometheus.CounterVec
	encodeErrors     *prometheus.CounterVec
	verifications    *prometheus.CounterVec
	rejectedListSize prometheus.Gauge
	trustListReloads prometheus.Counter
}

func newSecurityMetrics() metrics.SecurityMetrics {
	reg := metrics.GetRegistry()

	return &securityMetrics{
		decodeErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uacore_codec_decode_errors_total",
				Help: "Total number of binary decode errors by kind",
			},
			[]string{"kind"},
		),
		encodeErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uacore_codec_encode_errors_total",
				Help: "Total number of binary encode errors by kind",
			},
			[]string{"kind"},
		),
		verifications: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "uacore_certificate_verifications_total",
				Help: "Total number of certificate verifications by outcome status code",
			},
			[]string{"outcome"},
		),
		rejectedListSize: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "uacore_certificate_rejected_list_size",
				Help: "Current number of entries in the rejected certificate list",
			},
		),
		trustListReloads: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "uacore_trust_list_reloads_total",
				Help: "Total number of trust list reloads",
			},
		),
	}
}

func (m *securityMetrics) RecordDecodeError(kind string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(kind).Inc()
}

func (m *securityMetrics) RecordEncodeError(kind string) {
	if m == nil {
		return
	}
	m.encodeErrors.WithLabelValues(kind).Inc()
}

func (m *securityMetrics) RecordVerification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

func (m *securityMetrics) SetRejectedListSize(n int) {
	if m == nil {
		return
	}
	m.rejectedListSize.Set(float64(n))
}

func (m *securityMetrics) RecordTrustListReload() {
	if m == nil {
		return
	}
	m.trustListReloads.Inc()
}
