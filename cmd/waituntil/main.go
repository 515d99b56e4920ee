package main

import (
	"context"

	"go.uber.org/zap"                        // Logging.
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line option parser.

	"github.com/chronokit/chrono"            // Instants and scheduling.
	"github.com/chronokit/chrono/pkg/ctxlog" // Logger-in-context.
)

// Command line opts.
var (
	instantArg = kingpin.Arg("instant", "Target instant, e.g. \"2026-08-24 12:00 GMT\".").String()
	forFlag    = kingpin.Flag("for", "Wait for this many milliseconds instead of until an absolute instant.").Float64()
)

func main() {
	kingpin.CommandLine.Help = "Block until an instant is reached, then exit."
	kingpin.Parse()

	logger := chrono.SetupLogging()
	defer func() {
		_ = logger.Sync()
	}()
	ctx := ctxlog.WithLogger(context.Background(), logger)

	switch {
	case *forFlag != 0:
		p := chrono.NewPeriod(*forFlag)
		logger.Debug("waiting", zap.Float64("milliseconds", p.AsMilliseconds()))
		<-chrono.After(ctx, p)

	case *instantArg != "":
		target, err := chrono.ParseInstant(*instantArg)
		if err != nil {
			logger.Fatal("bad instant", zap.Error(err))
		}
		logger.Debug("waiting", zap.String("until", target.String()))
		<-chrono.Until(ctx, target)

	default:
		kingpin.Fatalf("either an instant argument or --for is required")
	}
}
