package chrono

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Calendar descriptor errors.
var (
	// ErrInvalidDescriptor is returned when a calendar field that
	// must be integral (year, month, day, hour, minute) is not.
	// Fractional seconds are allowed.
	ErrInvalidDescriptor = errors.New("chrono: non-integral calendar field")

	// ErrOutOfRange is returned when a calendar field is outside its
	// valid bounds, including leap-year-aware day bounds.
	ErrOutOfRange = errors.New("chrono: calendar field out of range")
)

// Calendar describes a Gregorian date and time plus a timezone
// designator. It is a construction-time input only: once an Instant
// is built from it, the fields are gone.
//
// Fields are float64 so that non-integral input can be detected and
// rejected rather than silently truncated.
type Calendar struct {
	Year   float64 `json:"year"`
	Month  float64 `json:"month"`
	Day    float64 `json:"day"`
	Hour   float64 `json:"hour"`
	Minute float64 `json:"minute"`

	// Second may be fractional.
	Second float64 `json:"second"`

	// Timezone is a free-form designator passed through to the host
	// parser, e.g. "GMT", "UTC" or "+02:00".
	Timezone string `json:"timezone"`
}

// InstantFromCalendar validates c and converts it to an Instant via
// the host's date-string parser. Construction either fully succeeds
// or fails; no partially built Instant is observable.
func InstantFromCalendar(c Calendar) (Instant, error) {
	if err := c.validate(); err != nil {
		return Instant{}, err
	}
	return ParseInstant(c.render())
}

// validate checks integrality and bounds of every field.
func (c Calendar) validate() error {
	integral := []struct {
		name  string
		value float64
	}{
		{"year", c.Year},
		{"month", c.Month},
		{"day", c.Day},
		{"hour", c.Hour},
		{"minute", c.Minute},
	}
	for _, f := range integral {
		if f.value != math.Trunc(f.value) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidDescriptor, f.name, f.value)
		}
	}

	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("%w: month=%v", ErrOutOfRange, c.Month)
	}
	if max := daysIn(int(c.Year), int(c.Month)); c.Day < 1 || c.Day > float64(max) {
		return fmt.Errorf("%w: day=%v (month %v of %v has %d days)",
			ErrOutOfRange, c.Day, c.Month, c.Year, max)
	}
	if c.Hour < 0 || c.Hour >= 24 {
		return fmt.Errorf("%w: hour=%v", ErrOutOfRange, c.Hour)
	}
	if c.Minute < 0 || c.Minute >= 60 {
		return fmt.Errorf("%w: minute=%v", ErrOutOfRange, c.Minute)
	}
	if c.Second < 0 || c.Second >= 60 {
		return fmt.Errorf("%w: second=%v", ErrOutOfRange, c.Second)
	}
	return nil
}

// render combines the fields into a date string for the host parser.
// Month through second are zero-padded to two digits; the year is
// not padded.
func (c Calendar) render() string {
	var sec string
	if c.Second == math.Trunc(c.Second) {
		sec = fmt.Sprintf("%02d", int(c.Second))
	} else {
		sec = fmt.Sprintf("%06.3f", c.Second)
	}
	s := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%s",
		int(c.Year), int(c.Month), int(c.Day), int(c.Hour), int(c.Minute), sec)
	if c.Timezone != "" {
		s += " " + c.Timezone
	}
	return s
}

// daysIn returns the number of days in the given month of the given
// year, resolving leap years through the host calendar. Day zero of
// the following month normalizes to the last day of this one.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
