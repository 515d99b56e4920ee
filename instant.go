package chrono

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/JohnCGriffin/overflow" // Checked int64 arithmetic
	"github.com/tidwall/gjson"         // JSON shape inspection
)

// Instant is a point in time, stored as a Period offset from the
// Unix epoch (1970-01-01T00:00:00Z). It never holds calendar fields;
// those exist only while a Calendar descriptor is being validated.
// Instants are immutable.
type Instant struct {
	off Period
}

// Epoch is the Instant at offset zero, 1970-01-01T00:00:00Z.
// It is also the zero value of Instant.
var Epoch = Instant{}

// NowFunc generates the current time for Now. Exported so that it
// can be overridden, for example by tests that need a deterministic
// clock.
var NowFunc = time.Now

// Now returns the Instant at the host clock's current offset.
func Now() Instant {
	return InstantFromTime(NowFunc())
}

// InstantFromMillis returns the Instant ms milliseconds from the
// epoch.
func InstantFromMillis(ms float64) Instant {
	return Instant{off: NewPeriod(ms)}
}

// InstantOf returns the Instant at offset p from the epoch.
func InstantOf(p Period) Instant {
	return Instant{off: p}
}

// InstantFromBreakdown returns the Instant whose epoch offset is the
// Period built from b, under the same rules as PeriodFromBreakdown.
func InstantFromBreakdown(b Breakdown) Instant {
	return Instant{off: PeriodFromBreakdown(b)}
}

// InstantFromTime returns the Instant at the same point in time as
// t, truncated to millisecond precision.
func InstantFromTime(t time.Time) Instant {
	frac := float64(t.Nanosecond() / int(time.Millisecond))
	if ms, ok := overflow.Mul64(t.Unix(), 1000); ok {
		return Instant{off: NewPeriod(float64(ms) + frac)}
	}
	// Out of int64 range; fall back to float arithmetic.
	return Instant{off: NewPeriod(float64(t.Unix())*1000 + frac)}
}

// UnixEpoch returns the offset from the epoch as a Period.
func (i Instant) UnixEpoch() Period {
	return i.off
}

// AsTime returns the host time.Time at this Instant, for interop
// with collaborators that require one.
func (i Instant) AsTime() time.Time {
	sec := math.Floor(i.off.ms / 1000)
	rem := i.off.ms - sec*1000 // in [0, 1000)
	return time.Unix(int64(sec), int64(rem*float64(time.Millisecond)))
}

// Before reports whether i is strictly earlier than o.
func (i Instant) Before(o Instant) bool {
	return i.off.ms < o.off.ms
}

// After reports whether i is strictly later than o.
func (i Instant) After(o Instant) bool {
	return i.off.ms > o.off.ms
}

// Equal reports exact millisecond equality with o.
func (i Instant) Equal(o Instant) bool {
	return i.off.Equal(o.off)
}

// Compare returns -1 if i is before o, 0 if they are equal and
// +1 if i is after o.
func (i Instant) Compare(o Instant) int {
	switch {
	case i.Before(o):
		return -1
	case i.After(o):
		return 1
	default:
		return 0
	}
}

// Add returns the Instant advanced by the sum of the given Periods.
func (i Instant) Add(qs ...Period) Instant {
	return Instant{off: i.off.Add(qs...)}
}

// Sub returns the Instant moved back by q.
func (i Instant) Sub(q Period) Instant {
	return Instant{off: i.off.Sub(q)}
}

// Difference returns o minus i as a Period: positive when o is
// later than i.
func (i Instant) Difference(o Instant) Period {
	return o.off.Sub(i.off)
}

// String renders i the way the host time.Time would render itself,
// for drop-in interop.
func (i Instant) String() string {
	return i.AsTime().String()
}

// MarshalJSON encodes i as {"unixEpoch": <breakdown>} using the
// default breakdown of the offset.
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UnixEpoch Breakdown `json:"unixEpoch"`
	}{i.off.Breakdown()})
}

// UnmarshalJSON accepts any of the shapes an Instant can be built
// from: a date string, a raw millisecond number, an
// {"unixEpoch": <breakdown>} object, a {"milliseconds": <scalar>}
// Period object, or a calendar descriptor object. The shape is
// inspected first and then normalized to the millisecond offset, so
// everything downstream stays monomorphic.
func (i *Instant) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch {
	case v.Type == gjson.String:
		inst, err := ParseInstant(v.String())
		if err != nil {
			return err
		}
		*i = inst
		return nil

	case v.Type == gjson.Number:
		*i = InstantFromMillis(v.Float())
		return nil

	case v.IsObject():
		if e := v.Get("unixEpoch"); e.Exists() {
			var b Breakdown
			if err := json.Unmarshal([]byte(e.Raw), &b); err != nil {
				return err
			}
			*i = InstantFromBreakdown(b)
			return nil
		}
		if m := v.Get("milliseconds"); m.Exists() {
			*i = InstantFromMillis(m.Float())
			return nil
		}
		if v.Get("year").Exists() {
			var c Calendar
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			inst, err := InstantFromCalendar(c)
			if err != nil {
				return err
			}
			*i = inst
			return nil
		}
		return fmt.Errorf("chrono: object is not an instant: %s", v.Raw)

	default:
		return fmt.Errorf("chrono: cannot decode %s as an instant", v.Type)
	}
}
