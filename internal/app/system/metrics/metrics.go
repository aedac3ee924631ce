// Package metrics holds the Prometheus instruments for data-source lookups
// and dashboard loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes recorded by IncDashboardLoad.
const (
	ResultReady    = "ready"
	ResultFailed   = "failed"
	ResultCanceled = "canceled"
)

type Metrics struct {
	FetchDuration  *prometheus.HistogramVec
	FetchFailures  *prometheus.CounterVec
	DashboardLoads *prometheus.CounterVec
}

// New registers the instruments with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intelhub_datasource_fetch_duration_seconds",
			Help:    "Duration of data source lookups by collection",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"source"}),
		FetchFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intelhub_datasource_fetch_failures_total",
			Help: "Total number of failed data source lookups by collection",
		}, []string{"source"}),
		DashboardLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intelhub_dashboard_loads_total",
			Help: "Total number of dashboard load cycles by result",
		}, []string{"result"}),
	}
}

// ObserveFetch records one lookup. A nil receiver is a no-op.
func (m *Metrics) ObserveFetch(source string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if err != nil {
		m.FetchFailures.WithLabelValues(source).Inc()
	}
}

// IncDashboardLoad counts a settled dashboard cycle. A nil receiver is a no-op.
func (m *Metrics) IncDashboardLoad(result string) {
	if m == nil {
		return
	}
	m.DashboardLoads.WithLabelValues(result).Inc()
}
