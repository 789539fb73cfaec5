package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerComputed      *prometheus.CounterVec
	ledgerDuration      prometheus.Histogram
	ledgerEvents        *prometheus.HistogramVec
	ledgerWarnings      *prometheus.CounterVec
	exportsTotal        *prometheus.CounterVec
	exportDuration      prometheus.Histogram
	authenticationTotal *prometheus.CounterVec
	rateLimitedTotal    *prometheus.CounterVec
}

var (
	defaultMetrics     *PrometheusMetrics
	defaultMetricsOnce sync.Once
)

// NewPrometheusMetrics returns the process-wide recorder. Collectors register
// with the default registry once, so repeated calls share them.
func NewPrometheusMetrics() MetricsRecorderInterface {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = newPrometheusMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// NewPrometheusMetricsWithRegistry registers collectors on reg, for tests
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	return newPrometheusMetrics(reg)
}

func newPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		ledgerComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_computations_total",
				Help: "Total number of ledger computations",
			},
			[]string{"account_type", "status"},
		),
		ledgerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_computation_duration_milliseconds",
				Help:    "Ledger computation duration in milliseconds, including record fetches",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerEvents: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_events_per_computation",
				Help:    "Number of events in the full history of a computed ledger",
				Buckets: prometheus.ExponentialBuckets(1, 4, 9),
			},
			[]string{"account_type"},
		),
		ledgerWarnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_record_warnings_total",
				Help: "Total number of records with a missing or non-finite amount",
			},
			[]string{"anomaly"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of ledger exports",
			},
			[]string{"format", "status"},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_export_duration_seconds",
				Help:    "Ledger export rendering duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		authenticationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		rateLimitedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_rate_limited_requests_total",
				Help: "Total number of requests rejected by the per-client rate limit",
			},
			[]string{"route"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_computed":
		m.ledgerComputed.WithLabelValues(tags["account_type"], tags["status"]).Inc()
	case "ledger_record_warning":
		if anomaly := tags["anomaly"]; anomaly != "" {
			m.ledgerWarnings.WithLabelValues(anomaly).Inc()
		}
	case "ledger_export":
		m.exportsTotal.WithLabelValues(tags["format"], tags["status"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationTotal.WithLabelValues(eventType).Inc()
		}
	case "rate_limited_request":
		m.rateLimitedTotal.WithLabelValues(tags["route"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger_computation":
		m.ledgerDuration.Observe(float64(duration.Milliseconds()))
	case "ledger_export":
		m.exportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger_events":
		m.ledgerEvents.WithLabelValues(tags["account_type"]).Observe(value)
	}
}
