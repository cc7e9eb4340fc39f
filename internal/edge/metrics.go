package edge

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "edge"

// Outcomes of a catalog call.
const (
	outcomeSuccess  = "success"
	outcomeFallback = "fallback"
)

// Metrics holds the collectors updated by the Adapter.
type Metrics struct {
	calls    *prometheus.CounterVec
	latency  prometheus.Histogram
	filtered prometheus.Counter
}

// NewMetrics creates the edge collectors and registers them with the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "calls_total",
			Help:      "Number of catalog calls by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "call_duration_seconds",
			Help:      "Duration of catalog calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		filtered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filtered_items_total",
			Help:      "Number of blocklisted items removed from responses.",
		}),
	}

	for _, c := range []prometheus.Collector{m.calls, m.latency, m.filtered} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
