package model

import "time"

// DefaultOffsetHours approximates the deployment's local timezone.
// The offset is fixed and does not follow daylight-saving rules.
const DefaultOffsetHours = 2

// Clock produces the application's notion of "now": a UTC reading
// shifted by a fixed offset and truncated to the minute, matching the
// precision of the persisted timestamp format.
type Clock struct {
	offset time.Duration
}

// NewClock returns a Clock with the given offset in whole hours.
func NewClock(offsetHours int) Clock {
	return Clock{offset: time.Duration(offsetHours) * time.Hour}
}

// Now returns the current shifted time at minute precision.
func (c Clock) Now() time.Time {
	return time.Now().UTC().Add(c.offset).Truncate(time.Minute)
}
