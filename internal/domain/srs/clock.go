package srs

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type zonedClock struct {
	loc *time.Location
}

// NewZonedClock returns a wall clock reporting time in loc.
// A nil loc means UTC.
func NewZonedClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return zonedClock{loc: loc}
}

func (c zonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always reports t. Useful in tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
