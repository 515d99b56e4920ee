// Package alarmd implements a daemon that runs a command at one or
// more future instants. Each --at value becomes its own FireAt
// chain, so targets hours or days away are re-anchored against the
// live clock instead of trusting one long host timer.
package alarmd

import (
	"context"
	"os"
	"os/exec"

	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
	"go.uber.org/zap"                                // Logging.
	tomb "gopkg.in/tomb.v2"                          // Goroutine lifecycle management.

	"github.com/chronokit/chrono"
	"github.com/chronokit/chrono/pkg/ctxlog"
	"github.com/chronokit/chrono/pkg/metrics"
)

const (
	// Name of the application.
	Name = "alarmd"

	// Usage docstring for the application.
	Usage = "Run a command at one or more future instants, re-anchoring long waits against the live clock."
)

// App holds application state.
type App struct {
	flags  *Flags           // Command line flags
	Health *Healthchecks    // Healthchecks HTTP handler
	inst   *Instrumentation // App-specific Prometheus metrics
}

// NewApp returns a new App.
func NewApp(flags *Flags, r prometheus.Registerer) (*App, error) {
	app := &App{
		flags:  flags,
		Health: NewHealthchecks(r, Name),
		inst:   NewInstrumentation(Name),
	}
	if err := r.Register(app.inst); err != nil {
		return nil, err
	}
	return app, nil
}

// Run arms one FireAt chain per --at target and blocks until every
// chain has fired and its command has finished. The first command
// error is returned; chains themselves have no cancellation, so
// later targets still fire even after an earlier command fails.
func (app *App) Run(ctx context.Context) error {
	logger := ctxlog.L(ctx)

	targets, err := app.flags.Targets()
	if err != nil {
		return err
	}

	t, ctx := tomb.WithContext(ctx)
	for n, target := range targets {
		n, target := n, target
		t.Go(func() error {
			cctx := ctxlog.With(ctx,
				zap.Int("entry", n),
				zap.Time("target", target.AsTime()),
			)
			dt := metrics.NewDriftTimer(target.AsTime(), app.inst.DriftSeconds)
			<-chrono.Until(cctx, target)
			err := app.execute()
			app.inst.Fires.Inc()
			drift := dt.ObserveOutcome(err)
			ctxlog.L(cctx).Info("fired",
				zap.Duration("drift", drift),
				zap.Error(err),
			)
			return err
		})
	}
	app.Health.Armed = true
	logger.Info("armed", zap.Int("chains", len(targets)))

	return t.Wait()
}

// execute runs the configured command, inheriting stdout/stderr.
func (app *App) execute() error {
	cmd := exec.Command(app.flags.Exec, app.flags.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
