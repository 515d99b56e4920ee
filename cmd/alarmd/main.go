package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"          // Prometheus metrics.
	"github.com/prometheus/client_golang/prometheus/promhttp" // Serve Prometheus metrics.
	"go.uber.org/zap"                                         // Logging.
	kingpin "gopkg.in/alecthomas/kingpin.v2"                  // Command line option parser.

	"github.com/chronokit/chrono"                     // Instants and scheduling.
	"github.com/chronokit/chrono/internal/app/alarmd" // The app itself.
	"github.com/chronokit/chrono/pkg/ctxlog"          // Logger-in-context.
)

func main() {
	kingpin.CommandLine.Help = alarmd.Usage
	flags := alarmd.NewFlags(kingpin.CommandLine)
	kingpin.Parse()

	logger := chrono.SetupLogging()
	defer func() {
		// Flush any buffered logs on the way out.
		_ = logger.Sync()
	}()
	ctx := ctxlog.WithLogger(context.Background(), logger)

	app, err := alarmd.NewApp(flags, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("error setting up alarmd", zap.Error(err))
	}

	// Serve healthchecks and metrics for as long as chains are armed.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/live", app.Health.Handler.LiveEndpoint)
	mux.HandleFunc("/ready", app.Health.Handler.ReadyEndpoint)
	go func() {
		addr := fmt.Sprintf(":%d", flags.Port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("monitoring endpoint failed", zap.Error(err))
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Fatal("alarmd exited with error", zap.Error(err))
	}
}
