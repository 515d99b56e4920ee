package chrono

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomMillis generates finite millisecond scalars of both signs in
// a range where float64 arithmetic stays well-behaved.
func randomMillis(r *rand.Rand) float64 {
	ms := r.Float64() * 1e12
	if r.Float64() > 0.5 {
		ms = -ms
	}
	return ms
}

func TestNewPeriod(t *testing.T) {
	tests := []float64{0, 1, -1, 0.5, 1209.6, 1e15, -3.25}
	for _, ms := range tests {
		p := NewPeriod(ms)
		assert.Equal(t, ms, p.AsMilliseconds())
	}
}

func TestPeriodAccessors(t *testing.T) {
	// Unit views are always the scalar divided by a fixed divisor.
	err := quick.Check(func(ms float64) bool {
		p := NewPeriod(ms)
		return p.AsMilliseconds() == ms &&
			p.AsSeconds() == ms/1000 &&
			p.AsMinutes() == ms/60000 &&
			p.AsHours() == ms/3600000 &&
			p.AsDays() == ms/86400000 &&
			p.AsWeeks() == ms/604800000
	}, &quick.Config{
		Values: func(args []reflect.Value, r *rand.Rand) {
			args[0] = reflect.ValueOf(randomMillis(r))
		},
	})
	assert.NoError(t, err)
}

func TestPeriodFromBreakdown(t *testing.T) {
	tests := []struct {
		name string
		in   Breakdown
		want float64
	}{
		{
			name: "empty",
			in:   Breakdown{},
			want: 0,
		},
		{
			name: "single",
			in:   Breakdown{Second: 2},
			want: 2000,
		},
		{
			name: "mixed",
			in:   Breakdown{Hour: 1, Minute: 30},
			want: 90 * 60000,
		},
		{
			name: "negative_and_fractional",
			in:   Breakdown{Day: -1, Hour: 0.5},
			want: -86400000 + 1800000,
		},
		{
			name: "microfortnights",
			in:   Breakdown{Microfortnight: 2},
			want: 2419.2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodFromBreakdown(tt.in).AsMilliseconds())
		})
	}
}

func TestPeriodHoursMinutes(t *testing.T) {
	// One hour thirty minutes is ninety minutes.
	p := PeriodFromBreakdown(Breakdown{Hour: 1, Minute: 30})
	assert.Equal(t, 90.0, p.AsMinutes())
}

func TestStaticConstructors(t *testing.T) {
	assert.Equal(t, 604800000.0, Weeks(1).AsMilliseconds())
	assert.Equal(t, 86400000.0, Days(1).AsMilliseconds())
	assert.Equal(t, 3600000.0, Hours(1).AsMilliseconds())
	assert.Equal(t, 60000.0, Minutes(1).AsMilliseconds())
	assert.Equal(t, 1000.0, Seconds(1).AsMilliseconds())
	assert.Equal(t, 1.0, Milliseconds(1).AsMilliseconds())
	assert.Equal(t, 5400000.0, Hours(1.5).AsMilliseconds())
}

func TestPeriodAddSub(t *testing.T) {
	d := Hours(3)
	x := Minutes(47).Add(Seconds(13))

	got := d.Add(x).Sub(x)
	assert.InDelta(t, d.AsMilliseconds(), got.AsMilliseconds(), 1e-6)

	// The receiver is never modified.
	assert.Equal(t, 3.0, d.AsHours())

	// Variadic add sums every argument.
	sum := NewPeriod(1).Add(NewPeriod(2), NewPeriod(3), NewPeriod(-6))
	assert.True(t, sum.IsZero())
}

func TestPeriodSubNegative(t *testing.T) {
	got := Seconds(1).Sub(Seconds(2))
	assert.Equal(t, -1000.0, got.AsMilliseconds())
}

func TestPeriodMulDiv(t *testing.T) {
	assert.Equal(t, 3000.0, Seconds(1.5).Mul(2).AsMilliseconds())
	assert.Equal(t, 750.0, Seconds(1.5).Div(2).AsMilliseconds())

	// Division by zero propagates IEEE-754 semantics, no guards.
	assert.True(t, math.IsInf(Seconds(1).Div(0).AsMilliseconds(), 1))
	assert.True(t, math.IsInf(Seconds(-1).Div(0).AsMilliseconds(), -1))
	assert.True(t, math.IsNaN(NewPeriod(0).Div(0).AsMilliseconds()))
}

func TestPeriodAbs(t *testing.T) {
	assert.Equal(t, 5.0, NewPeriod(-5).Abs().AsMilliseconds())
	assert.Equal(t, 5.0, NewPeriod(5).Abs().AsMilliseconds())
	assert.Equal(t, 0.0, NewPeriod(0).Abs().AsMilliseconds())
}

func TestPeriodEqual(t *testing.T) {
	assert.True(t, Seconds(60).Equal(Minutes(1)))
	assert.False(t, NewPeriod(1).Equal(NewPeriod(1.0000001)))
}

func TestPeriodDurationInterop(t *testing.T) {
	p := PeriodOf(90 * time.Second)
	assert.Equal(t, 90000.0, p.AsMilliseconds())
	assert.Equal(t, 90*time.Second, p.AsDuration())
}

func TestUnitNames(t *testing.T) {
	for u, want := range map[Unit]string{
		Millisecond:    "milliseconds",
		Second:         "seconds",
		Minute:         "minutes",
		Hour:           "hours",
		Day:            "days",
		Week:           "weeks",
		Microfortnight: "microfortnights",
	} {
		assert.Equal(t, want, u.String())
		got, err := UnitFromString(want)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	_, err := UnitFromString("fortnights")
	assert.Error(t, err)
}

func TestMicrofortnightDivisor(t *testing.T) {
	// One millionth of fourteen days.
	assert.Equal(t, 1209.6, Microfortnight.Divisor())
	assert.InDelta(t, 14*24*60*60*1000/1e6, Microfortnight.Divisor(), 1e-9)
}
