package alarmd

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line flag parsing.

	"github.com/chronokit/chrono"
)

const defaultPort = "8080"

// Flags holds command line flags for the alarmd App.
type Flags struct {
	// Instants at which to run the command.
	At []string

	// Command to run, with arguments.
	Exec string
	Args []string

	// Port to serve healthchecks and metrics on.
	Port uint16
}

// NewFlags returns a new Flags registered on app.
func NewFlags(app *kingpin.Application) *Flags {
	var f Flags

	app.Flag("at", "Instant at which to run the command, e.g. \"2026-08-24 12:00 GMT\". May be repeated; one chain is armed per value.").
		Required().
		StringsVar(&f.At)

	app.Flag("exec", "Command to run when an instant arrives.").
		Required().
		StringVar(&f.Exec)

	app.Flag("arg", "Argument to pass to the command. May be repeated.").
		StringsVar(&f.Args)

	app.Flag("port", "Port to serve healthchecks and Prometheus metrics on.").
		Default(defaultPort).
		Uint16Var(&f.Port)

	return &f
}

// Targets parses the --at flags into Instants.
func (f *Flags) Targets() ([]chrono.Instant, error) {
	targets := make([]chrono.Instant, 0, len(f.At))
	for _, s := range f.At {
		target, err := chrono.ParseInstant(s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}
