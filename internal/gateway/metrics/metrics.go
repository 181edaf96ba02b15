package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the gateway's prometheus instruments.
type Metrics struct {
	FailedReads   *prometheus.CounterVec
	StatsDuration prometheus.Histogram
}

// New registers the gateway metrics on the given registerer. Passing a fresh
// registry in tests avoids duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FailedReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aidchain_gateway_failed_reads_total",
			Help: "Per-object chain reads that failed or returned malformed data.",
		}, []string{"kind"}),
		StatsDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "aidchain_gateway_stats_duration_seconds",
			Help:    "Time spent assembling the stats overview.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementFailedRead(kind string) {
	m.FailedReads.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveStats(start time.Time) {
	m.StatsDuration.Observe(time.Since(start).Seconds())
}
