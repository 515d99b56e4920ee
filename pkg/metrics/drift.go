// Package metrics provides Prometheus helpers for observing how a
// scheduled callback fired relative to its target instant.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LabelOutcome is the conventional label name for success/error
// outcomes on chrono metrics.
const LabelOutcome = "outcome"

// DriftTimer observes the drift of a fired callback against the
// instant it was scheduled for. Positive observations mean the
// callback ran late; a correct scheduler never observes a negative
// drift beyond host timer granularity.
// Use NewDriftTimer to create instances.
type DriftTimer struct {
	target time.Time
	vec    prometheus.ObserverVec
}

// NewDriftTimer returns a DriftTimer for the given target. The
// ObserverVec receives the drift in seconds when the timer is
// observed:
//
//	dt := metrics.NewDriftTimer(target, driftHistogramVec)
//	// ... callback fires ...
//	dt.ObserveWithLabelValues("my-job")
func NewDriftTimer(target time.Time, v prometheus.ObserverVec) *DriftTimer {
	return &DriftTimer{
		target: target,
		vec:    v,
	}
}

// ObserveWithLabelValues records the drift between now and the
// target, labeling the derived Observer with the given values.
// The drift is also returned.
func (t *DriftTimer) ObserveWithLabelValues(labels ...string) time.Duration {
	d := time.Since(t.target)
	if t.vec != nil {
		t.vec.WithLabelValues(labels...).Observe(d.Seconds())
	}
	return d
}

// ObserveWith records the drift between now and the target,
// deriving an Observer from the given labels.
// The drift is also returned.
func (t *DriftTimer) ObserveWith(labels prometheus.Labels) time.Duration {
	d := time.Since(t.target)
	if t.vec != nil {
		t.vec.With(labels).Observe(d.Seconds())
	}
	return d
}

// ObserveOutcome sets a label named LabelOutcome based on err and
// records the drift between now and the target.
// The drift is also returned.
func (t *DriftTimer) ObserveOutcome(err error) time.Duration {
	d := time.Since(t.target)
	if t.vec != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		t.vec.With(prometheus.Labels{LabelOutcome: outcome}).Observe(d.Seconds())
	}
	return d
}
