package chrono

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Breakdown is a mapping from unit to amount. It is used both as a
// construction input (PeriodFromBreakdown) and as the output of
// decomposing a Period (Period.Breakdown and friends).
type Breakdown map[Unit]float64

// defaultBreakdownUnits is the unit list used when the caller does
// not supply one.
var defaultBreakdownUnits = []Unit{Day, Hour, Minute, Second, Millisecond}

// PeriodFromBreakdown returns the Period whose magnitude is the sum
// of amount*divisor over b's entries. Order is irrelevant and
// unlisted units contribute zero. Amounts are not validated; any
// real number is accepted at every unit.
func PeriodFromBreakdown(b Breakdown) Period {
	var ms float64
	for u, amount := range b {
		ms += amount * u.Divisor()
	}
	return Period{ms: ms}
}

// BreakdownOptions control decomposition.
type BreakdownOptions struct {
	// FloatLast leaves the least significant unit fractional so that
	// no information is lost. When false the last unit is floored and
	// the remainder silently dropped.
	FloatLast bool

	// IncludeZero keeps units whose amount came out zero in the
	// result, guaranteeing a predictable shape.
	IncludeZero bool
}

// Breakdown decomposes p into days, hours, minutes, seconds and
// milliseconds, keeping full precision in the smallest unit
// (FloatLast) and omitting units that contribute nothing.
func (p Period) Breakdown() Breakdown {
	return p.BreakdownWith(BreakdownOptions{FloatLast: true}, defaultBreakdownUnits...)
}

// BreakdownIn decomposes p into exactly the given units, truncating
// at the least significant one and including zero amounts, so the
// result shape is fully determined by the unit list.
func (p Period) BreakdownIn(units ...Unit) Breakdown {
	return p.BreakdownWith(BreakdownOptions{IncludeZero: true}, units...)
}

// BreakdownWith decomposes p into the given units with explicit
// options. An empty unit list means the default
// days/hours/minutes/seconds/milliseconds.
//
// Decomposition always proceeds most-significant-unit-first no
// matter how the units are listed. Each unit takes the floor of what
// remains; the floor rounds toward negative infinity, so breaking
// down a negative Period does not simply negate the positive case's
// amounts. That asymmetry is long-standing behavior that callers
// rely on.
func (p Period) BreakdownWith(opts BreakdownOptions, units ...Unit) Breakdown {
	if len(units) == 0 {
		units = defaultBreakdownUnits
	}
	units = bySignificance(units)

	out := make(Breakdown, len(units))
	remaining := p.ms
	for i, u := range units {
		div := u.Divisor()
		var amount float64
		if i == len(units)-1 && opts.FloatLast {
			amount = remaining / div
			remaining = 0
		} else {
			amount = math.Floor(remaining / div)
			remaining -= amount * div
		}
		if opts.IncludeZero || amount != 0 {
			out[u] = amount
		}
	}
	return out
}

// MarshalJSON encodes b as an object keyed by unit name, emitted in
// significance order (largest unit first).
func (b Breakdown) MarshalJSON() ([]byte, error) {
	units := make([]Unit, 0, len(b))
	for u := range b {
		units = append(units, u)
	}
	units = bySignificance(units)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, u := range units {
		if i > 0 {
			buf.WriteByte(',')
		}
		amount, err := json.Marshal(b[u])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:%s", u.String(), amount)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by unit name. Unknown unit
// names are an error rather than a silent zero contribution.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Breakdown, len(raw))
	for name, amount := range raw {
		u, err := UnitFromString(name)
		if err != nil {
			return err
		}
		out[u] = amount
	}
	*b = out
	return nil
}

// MarshalJSON encodes p as {"milliseconds": <scalar>}.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Milliseconds float64 `json:"milliseconds"`
	}{p.ms})
}

// UnmarshalJSON decodes the {"milliseconds": <scalar>} form.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw struct {
		Milliseconds float64 `json:"milliseconds"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Period{ms: raw.Milliseconds}
	return nil
}
