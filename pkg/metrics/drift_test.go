package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVec() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "drift_seconds",
		Help: "Test drift histogram.",
	}, []string{LabelOutcome})
}

// gatherSampleCount returns the total number of observations across
// the metric family.
func gatherSampleCount(t *testing.T, vec *prometheus.HistogramVec) uint64 {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(vec))
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var n uint64
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			n += m.GetHistogram().GetSampleCount()
		}
	}
	return n
}

func TestDriftTimerObserveOutcome(t *testing.T) {
	vec := newTestVec()
	target := time.Now().Add(-50 * time.Millisecond)

	d := NewDriftTimer(target, vec).ObserveOutcome(nil)
	assert.True(t, d >= 50*time.Millisecond, "drift %s should be at least 50ms", d)
	assert.Equal(t, uint64(1), gatherSampleCount(t, vec))
}

func TestDriftTimerObserveWithLabelValues(t *testing.T) {
	vec := newTestVec()
	target := time.Now()

	NewDriftTimer(target, vec).ObserveWithLabelValues("success")
	assert.Equal(t, uint64(1), gatherSampleCount(t, vec))
}

func TestDriftTimerNilVec(t *testing.T) {
	// A nil ObserverVec still measures, it just doesn't record.
	target := time.Now().Add(-time.Millisecond)
	d := NewDriftTimer(target, nil).ObserveWith(prometheus.Labels{LabelOutcome: "success"})
	assert.True(t, d > 0)
}
