package chrono

import (
	"context"
	"time"

	"github.com/cenkalti/backoff" // Backoff/retry utils
	"github.com/google/uuid"      // Chain IDs for log correlation
	"go.uber.org/zap"

	"github.com/chronokit/chrono/pkg/ctxlog"
)

// ReanchorWindow is how far ahead of the target a single host timer
// is trusted. Host single-shot timers are reliable over tens of
// seconds but may be clamped or drift over long delays, so chains
// further out than this wait one window at a time and recompute the
// remaining distance against the live clock. It is a variable so
// tests can shrink it.
var ReanchorWindow = 30 * time.Second

// FireAt schedules fn to run once when the target Instant is
// reached. It returns immediately.
//
// If the target is within ReanchorWindow the host timer is armed
// once, directly for the remaining delay, so completion is exact to
// host timer granularity. Otherwise the chain sleeps one window and
// re-anchors: remaining distance is always recomputed against the
// original target, never accumulated. fn never runs early; it may
// run late under host scheduling pressure. There is no cancellation
// — once armed, a chain runs until the target is reached or the
// process ends. ctx supplies only the logger.
func FireAt(ctx context.Context, target Instant, fn func()) {
	logger := ctxlog.L(ctx).With(
		zap.String("chain", uuid.New().String()),
		zap.Time("target", target.AsTime()),
	)
	go fireLoop(logger, target, fn)
}

// fireLoop is the re-anchoring loop behind FireAt. It is a loop, not
// recursion, so arbitrarily distant targets cost constant stack.
func fireLoop(logger *zap.Logger, target Instant, fn func()) {
	ticker := backoff.NewTicker(backoff.NewConstantBackOff(ReanchorWindow))
	defer ticker.Stop()

	window := PeriodOf(ReanchorWindow)
	for {
		remaining := Now().Difference(target)
		if remaining.AsMilliseconds() < window.AsMilliseconds() {
			d := remaining.AsDuration()
			if d < 0 {
				d = 0
			}
			logger.Debug("arming final timer", zap.Duration("remaining", d))
			time.AfterFunc(d, fn)
			return
		}
		logger.Debug("re-anchoring", zap.Duration("remaining", remaining.AsDuration()))
		if _, ok := <-ticker.C; !ok {
			return
		}
	}
}

// Until returns a channel that is closed once the target Instant is
// reached, via a FireAt chain.
func Until(ctx context.Context, target Instant) <-chan struct{} {
	done := make(chan struct{})
	FireAt(ctx, target, func() { close(done) })
	return done
}

// After returns a channel that is closed once p has elapsed from
// now. Millisecond counts and breakdowns go through NewPeriod and
// PeriodFromBreakdown respectively.
func After(ctx context.Context, p Period) <-chan struct{} {
	return Until(ctx, Now().Add(p))
}
