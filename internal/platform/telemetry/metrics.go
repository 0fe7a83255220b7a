package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes recorded by CatalogMetrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// CatalogMetrics holds the Prometheus instruments for catalog queries.
type CatalogMetrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCatalogMetrics registers the catalog query instruments with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)

	return &CatalogMetrics{
		queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_queries_total",
				Help: "Total number of catalog queries by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_query_duration_seconds",
				Help:    "Catalog query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Observe records one finished query. A nil receiver is a no-op so callers
// can run without metrics.
func (m *CatalogMetrics) Observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	m.queries.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
