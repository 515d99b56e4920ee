// Package ctxlog carries a zap Logger in a Context so that library
// code (like the FireAt scheduler chains) can log with whatever
// fields the caller has accumulated.
package ctxlog

import (
	"context"

	"go.uber.org/zap"
)

type loggerKeyType struct{}

var (
	// loggerKey is the unique key a zap.Logger is stored under.
	loggerKey = loggerKeyType{}

	// nop ensures L and S always return something usable.
	nop = zap.NewNop()

	// L is an alias for Logger.
	L = Logger

	// S is an alias for Sugar.
	S = Sugar
)

// WithLogger embeds logger in ctx. It can be retrieved later with
// Logger or Sugar.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// With adds fields to the Logger embedded in ctx.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, Logger(ctx).With(fields...))
}

// Named adds a name segment to the Logger embedded in ctx.
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Logger(ctx).Named(name))
}

// Logger returns the Logger embedded in ctx, or a nop Logger if
// there is none.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return nop
}

// Sugar returns the embedded Logger's SugaredLogger.
func Sugar(ctx context.Context) *zap.SugaredLogger {
	return Logger(ctx).Sugar()
}
