// Package clock provides the wall-clock source used to stamp log lines and
// to compute recency bounds.
package clock

import "time"

// Clock reports the current time.
//
// Production code uses System. Tests inject a fixed clock so timestamps and
// recency bounds are deterministic.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock, always in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Or returns c, or System when c is nil.
func Or(c Clock) Clock {
	if c == nil {
		return System{}
	}
	return c
}
