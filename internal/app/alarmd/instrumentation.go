package alarmd

import (
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/chronokit/chrono/pkg/metrics"
)

// Instrumentation holds Prometheus metrics specific to the
// alarmd App.
type Instrumentation struct {
	// Count of callbacks that have fired.
	Fires prometheus.Counter

	// How late each callback fired relative to its target instant,
	// labeled by command outcome.
	DriftSeconds *prometheus.HistogramVec
}

// NewInstrumentation returns a new Instrumentation.
func NewInstrumentation(namespace string) *Instrumentation {
	return &Instrumentation{
		Fires: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fires_total",
			Help:      "Count of scheduled callbacks that have fired.",
		}),
		DriftSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "drift_seconds",
			Help:      "How late a callback fired relative to its target instant.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{metrics.LabelOutcome}),
	}
}

// Describe implements the prometheus.Collector interface.
func (m *Instrumentation) Describe(c chan<- *prometheus.Desc) {
	m.Fires.Describe(c)
	m.DriftSeconds.Describe(c)
}

// Collect implements the prometheus.Collector interface.
func (m *Instrumentation) Collect(c chan<- prometheus.Metric) {
	m.Fires.Collect(c)
	m.DriftSeconds.Collect(c)
}
