// Package chrono provides immutable value types for spans of time
// (Period) and points in time (Instant), both backed by a single
// signed float64 count of milliseconds, plus a scheduling primitive
// (FireAt) for firing callbacks at instants beyond the reliable
// range of a single host timer.
package chrono

import (
	"time"
)

// Period is a span of time: a signed millisecond magnitude with
// computed views in other units. The millisecond scalar is the only
// state; nothing else is stored. Periods are immutable — every
// operation returns a new value.
type Period struct {
	ms float64
}

// NewPeriod returns a Period of ms milliseconds.
// Any real number is accepted, including negative and fractional.
func NewPeriod(ms float64) Period {
	return Period{ms: ms}
}

// PeriodOf returns the Period equivalent of a time.Duration,
// truncated to millisecond precision.
func PeriodOf(d time.Duration) Period {
	return Period{ms: float64(d / time.Millisecond)}
}

// Static per-unit constructors. Each is a thin wrapper over the
// breakdown form.

// Weeks returns a Period of n weeks.
func Weeks(n float64) Period { return PeriodFromBreakdown(Breakdown{Week: n}) }

// Days returns a Period of n days.
func Days(n float64) Period { return PeriodFromBreakdown(Breakdown{Day: n}) }

// Hours returns a Period of n hours.
func Hours(n float64) Period { return PeriodFromBreakdown(Breakdown{Hour: n}) }

// Minutes returns a Period of n minutes.
func Minutes(n float64) Period { return PeriodFromBreakdown(Breakdown{Minute: n}) }

// Seconds returns a Period of n seconds.
func Seconds(n float64) Period { return PeriodFromBreakdown(Breakdown{Second: n}) }

// Milliseconds returns a Period of n milliseconds.
func Milliseconds(n float64) Period { return PeriodFromBreakdown(Breakdown{Millisecond: n}) }

// AsMilliseconds returns the canonical millisecond magnitude.
func (p Period) AsMilliseconds() float64 { return p.ms }

// AsSeconds returns the magnitude in seconds.
func (p Period) AsSeconds() float64 { return p.ms / divisors[Second] }

// AsMinutes returns the magnitude in minutes.
func (p Period) AsMinutes() float64 { return p.ms / divisors[Minute] }

// AsHours returns the magnitude in hours.
func (p Period) AsHours() float64 { return p.ms / divisors[Hour] }

// AsDays returns the magnitude in days.
func (p Period) AsDays() float64 { return p.ms / divisors[Day] }

// AsWeeks returns the magnitude in weeks.
func (p Period) AsWeeks() float64 { return p.ms / divisors[Week] }

// AsDuration returns the Period as a time.Duration for interop with
// the host timer APIs. Fractional milliseconds are truncated.
func (p Period) AsDuration() time.Duration {
	return time.Duration(p.ms) * time.Millisecond
}

// Add returns the sum of p and every q. p is not modified.
func (p Period) Add(qs ...Period) Period {
	sum := p.ms
	for _, q := range qs {
		sum += q.ms
	}
	return Period{ms: sum}
}

// Sub returns p minus q. The result may be negative.
func (p Period) Sub(q Period) Period {
	return Period{ms: p.ms - q.ms}
}

// Mul returns p scaled by f.
func (p Period) Mul(f float64) Period {
	return Period{ms: p.ms * f}
}

// Div returns p divided by f. Division by zero is not guarded;
// the result propagates IEEE-754 infinities or NaN.
func (p Period) Div(f float64) Period {
	return Period{ms: p.ms / f}
}

// Abs returns p unchanged if non-negative, otherwise its negation.
func (p Period) Abs() Period {
	if p.ms < 0 {
		return Period{ms: -p.ms}
	}
	return p
}

// Equal reports exact equality of the millisecond scalars.
// There is no epsilon tolerance.
func (p Period) Equal(q Period) bool {
	return p.ms == q.ms
}

// IsZero reports whether p is exactly zero milliseconds.
func (p Period) IsZero() bool {
	return p.ms == 0
}
