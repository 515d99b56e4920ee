package alarmd

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppRun(t *testing.T) {
	flags := &Flags{
		// A target already in the past fires immediately.
		At:   []string{"2021-10-31 19:30 GMT"},
		Exec: "true",
	}
	app, err := NewApp(flags, prometheus.NewPedanticRegistry())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("alarmd did not fire a past-target chain promptly")
	}
	assert.True(t, app.Health.Armed)
}

func TestAppRunCommandError(t *testing.T) {
	flags := &Flags{
		At:   []string{"2021-10-31 19:30 GMT"},
		Exec: "false",
	}
	app, err := NewApp(flags, prometheus.NewPedanticRegistry())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("alarmd did not finish")
	}
}

func TestAppRunBadTarget(t *testing.T) {
	flags := &Flags{
		At:   []string{"garbage"},
		Exec: "true",
	}
	app, err := NewApp(flags, prometheus.NewPedanticRegistry())
	require.NoError(t, err)
	assert.Error(t, app.Run(context.Background()))
}

func TestInstrumentationCollector(t *testing.T) {
	inst := NewInstrumentation(Name)

	r := prometheus.NewPedanticRegistry()
	require.NoError(t, r.Register(inst))

	inst.Fires.Inc()
	inst.DriftSeconds.WithLabelValues("success").Observe(0.01)

	mfs, err := r.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 2)
}
