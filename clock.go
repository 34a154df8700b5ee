package hijri

import (
	"fmt"
	"time"
)

// Clock abstracts time.Now() to allow deterministic testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current local date.
func Today() (Date, error) {
	return TodayFrom(RealClock{})
}

// TodayFrom returns the date the clock reads, in the clock's location.
// A nil clock or a zero time yields ErrClockRead.
func TodayFrom(c Clock) (Date, error) {
	if c == nil {
		return Date{}, fmt.Errorf("%w: no clock", ErrClockRead)
	}
	now := c.Now()
	if now.IsZero() {
		return Date{}, fmt.Errorf("%w: zero time", ErrClockRead)
	}
	return FromTime(now)
}
