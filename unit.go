package chrono

import (
	"fmt"
	"sort"
)

// Unit is a unit of time that a Period can be expressed in.
//
// Units like month and year are hard to specify due to the
// vagaries of calendars, leap seconds, the changing shape of
// the earth, planetary orbits, etc. Which is why they stop
// at weeks here.
type Unit int

const (
	// Millisecond is the canonical unit; every Period is
	// stored as a count of milliseconds.
	Millisecond Unit = iota

	// Second unit (1000 ms).
	Second

	// Minute unit (60 seconds).
	Minute

	// Hour unit (60 minutes).
	Hour

	// Day unit (24 hours).
	Day

	// Week unit (7 days).
	Week

	// Microfortnight unit (1.2096 seconds).
	// One millionth of fourteen days. Indispensable.
	Microfortnight
)

// divisors maps each Unit to its magnitude in milliseconds.
// Read-only after process start.
var divisors = map[Unit]float64{
	Millisecond:    1,
	Second:         1000,
	Minute:         60 * 1000,
	Hour:           60 * 60 * 1000,
	Day:            24 * 60 * 60 * 1000,
	Week:           7 * 24 * 60 * 60 * 1000,
	Microfortnight: 1209.6,
}

// unitNames maps each Unit to the name it goes by in
// breakdown mappings and JSON.
var unitNames = map[Unit]string{
	Millisecond:    "milliseconds",
	Second:         "seconds",
	Minute:         "minutes",
	Hour:           "hours",
	Day:            "days",
	Week:           "weeks",
	Microfortnight: "microfortnights",
}

// Divisor returns the magnitude of u in milliseconds.
func (u Unit) Divisor() float64 {
	d, ok := divisors[u]
	if !ok {
		panic(fmt.Sprintf("chrono: unknown unit %d", int(u)))
	}
	return d
}

// String returns the breakdown-mapping name of u,
// e.g. "minutes".
func (u Unit) String() string {
	n, ok := unitNames[u]
	if !ok {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return n
}

// UnitFromString returns the Unit named by s,
// e.g. "minutes" => Minute.
func UnitFromString(s string) (Unit, error) {
	for u, n := range unitNames {
		if n == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("chrono: unknown unit name %q", s)
}

// bySignificance returns units sorted largest-divisor-first with
// duplicates removed. Decomposition always proceeds in this order
// no matter how the caller listed the units.
func bySignificance(units []Unit) []Unit {
	seen := make(map[Unit]bool, len(units))
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Divisor() > out[j].Divisor()
	})
	return out
}
