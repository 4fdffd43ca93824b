package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeLayout is the persisted timestamp format: minute precision,
// no seconds, no timezone marker.
const TimeLayout = "2006-01-02 15:04"

// ErrInvalidRange rejects any boundary change that would end a shift
// before it starts.
var ErrInvalidRange = errors.New("clock-out precedes clock-in")

// Shift is one worker's contiguous clock-in-to-clock-out interval.
// An open shift has no ClockOut yet; TotalHours is derived from the
// two boundaries and present only on closed shifts.
type Shift struct {
	Worker     string
	ClockIn    time.Time
	ClockOut   *time.Time
	TotalHours *float64
}

// Open reports whether the shift has not been closed yet.
func (s Shift) Open() bool {
	return s.ClockOut == nil
}

// Close sets the clock-out boundary and recomputes TotalHours. It is
// the only way a shift transitions from open to closed; callers never
// assign ClockOut or TotalHours directly.
func (s *Shift) Close(at time.Time) error {
	if at.Before(s.ClockIn) {
		return fmt.Errorf("closing shift for %q: %w", s.Worker, ErrInvalidRange)
	}
	h := Hours(s.ClockIn, at)
	s.ClockOut = &at
	s.TotalHours = &h
	return nil
}

// Hours returns the length of [in, out] in hours, rounded to two
// decimal places.
func Hours(in, out time.Time) float64 {
	return math.Round(out.Sub(in).Hours()*100) / 100
}

// NormalizeName is the single name-normalization rule shared by every
// lookup: surrounding whitespace is ignored and matching is
// case-insensitive. Whitelist checks, active-shift scans and report
// grouping all go through here so matching never diverges.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseStamp parses a timestamp in the persisted format.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatStamp renders t in the persisted format.
func FormatStamp(t time.Time) string {
	return t.Format(TimeLayout)
}
