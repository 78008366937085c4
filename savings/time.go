package savings

import (
	"strings"
	"time"
)

// =============================================================================
// INSTANT - Naive wall-clock time point
// =============================================================================

// Instant is a point on one implicit local calendar. There is no timezone
// handling anywhere in the engine: timestamps are compared exactly as
// written, which is what the savings rules expect.
type Instant struct {
	Time time.Time
}

// The accepted timestamp layouts, tried in this order. Seconds default to 0
// when the shorter form matches.
var instantLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant parses a timestamp string after trimming surrounding
// whitespace. The first layout that matches wins. Returns *ParseError when
// neither layout matches.
func ParseInstant(s string) (Instant, error) {
	cleaned := strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return Instant{Time: t}, nil
		}
	}
	return Instant{}, &ParseError{Input: s}
}

// NewInstant builds an Instant directly. Used by tests and window helpers.
func NewInstant(year int, month time.Month, day, hour, min, sec int) Instant {
	return Instant{Time: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// Comparison
func (i Instant) Before(other Instant) bool        { return i.Time.Before(other.Time) }
func (i Instant) After(other Instant) bool         { return i.Time.After(other.Time) }
func (i Instant) Equal(other Instant) bool         { return i.Time.Equal(other.Time) }
func (i Instant) BeforeOrEqual(other Instant) bool { return !i.After(other) }
func (i Instant) AfterOrEqual(other Instant) bool  { return !i.Before(other) }

func (i Instant) IsZero() bool { return i.Time.IsZero() }

func (i Instant) String() string {
	return i.Time.Format("2006-01-02 15:04:05")
}
