// Package clock provides the current time to code that needs to know "today".
package clock

import "time"

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock in a fixed location.
type System struct {
	Location *time.Location
}

// Now returns the current time in the clock's location, or in local time
// if no location is set.
func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}

	return time.Now().In(s.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
