// ABOUTME: Timestamp formatting and a monotonic clock for record timestamps.
// ABOUTME: Stamps are millisecond UTC and strictly increase across calls.
package storage

import (
	"fmt"
	"sync"
	"time"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newClock(now func() time.Time) *clock {
	return &clock{now: now}
}

// Now returns the current time, bumped past the previous stamp if needed.
func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next()
}

// After returns a stamp strictly later than prev.
func (c *clock) After(prev time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.next()
	if !t.After(prev) {
		t = prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
		c.last = t
	}
	return t
}

func (c *clock) next() time.Time {
	t := c.now().UTC().Truncate(time.Millisecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Millisecond)
	}
	c.last = t
	return t
}
