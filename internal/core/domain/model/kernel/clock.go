package kernel

import (
	"sync"
	"time"
)

// Clock supplies receipt timestamps.
type Clock interface {
	Now() time.Time
}

// MonotonicClock returns UTC times truncated to the microsecond (the precision
// of Postgres timestamptz) that strictly increase from one call to the next.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

func NewMonotonicClockWithSource(now func() time.Time) *MonotonicClock {
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
