package chrono

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache" // In-memory TTL cache
)

// parseLayouts are the layouts ParseInstant tries, in order. The
// host parser accepts a fractional seconds component after any
// seconds field, so no ".000" variants are needed.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04 -07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	time.ANSIC,
}

// parseCache memoizes string => Instant. Timestamp strings tend to
// repeat (log replay, retries), and a miss costs up to
// len(parseLayouts) parse attempts.
var parseCache = cache.New(10*time.Minute, 30*time.Minute)

// ParseInstant parses a free-form date/time string into an Instant
// by delegating to the host's parser. The parser's idiosyncrasies —
// including how it resolves bare timezone abbreviations — are
// inherited, not reimplemented.
func ParseInstant(s string) (Instant, error) {
	if v, ok := parseCache.Get(s); ok {
		return v.(Instant), nil
	}
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		inst := InstantFromTime(t)
		parseCache.Set(s, inst, cache.DefaultExpiration)
		return inst, nil
	}
	return Instant{}, fmt.Errorf("chrono: cannot parse %q as an instant", s)
}

// MustParseInstant is like ParseInstant, but panics on error.
func MustParseInstant(s string) Instant {
	inst, err := ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return inst
}
