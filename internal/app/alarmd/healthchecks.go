package alarmd

import (
	"errors"

	"github.com/heptiolabs/healthcheck"              // Healthchecks framework.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
)

// Healthchecks holds the HTTP healthcheck handler for alarmd.
type Healthchecks struct {
	Handler healthcheck.Handler

	// Set true once every FireAt chain has been armed.
	Armed bool
}

// NewHealthchecks returns a new Healthchecks.
func NewHealthchecks(r prometheus.Registerer, namespace string) *Healthchecks {
	h := &Healthchecks{
		Handler: healthcheck.NewMetricsHandler(r, namespace),
	}

	h.Handler.AddLivenessCheck("goroutines", healthcheck.GoroutineCountCheck(200))

	h.Handler.AddReadinessCheck("chains-armed", func() error {
		if !h.Armed {
			return errors.New("scheduler chains not yet armed")
		}
		return nil
	})

	return h
}
