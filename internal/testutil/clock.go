package testutil

import (
	"sync"
	"time"
)

// FixedClock is a manually driven clock for tests.
//
// Unlike clock.System, FixedClock only moves when told to, so timestamps
// written by the logger and recency bounds computed by queries are
// reproducible.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at t, converted to UTC.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t.UTC()}
}

// MustParseClock creates a clock frozen at an RFC 3339 timestamp.
// It panics on malformed input; use it only with literals.
func MustParseClock(rfc3339 string) *FixedClock {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		panic(err)
	}
	return NewFixedClock(t)
}

// Now returns the frozen time.
//
// Implements clock.Clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

// Advance moves the clock forward by d and returns the new time.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
