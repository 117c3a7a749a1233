package kernel

import (
	"sync/atomic"
	"time"
)

// IDGenerator hands out order identifiers.
type IDGenerator interface {
	Next() OrderID
}

// MonotonicIDGenerator issues ids shaped like Unix milliseconds but strictly
// increasing: two calls within the same millisecond get consecutive values.
// Uniqueness therefore does not depend on the call rate.
type MonotonicIDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

// NewMonotonicIDGenerator creates a generator driven by the wall clock.
func NewMonotonicIDGenerator() *MonotonicIDGenerator {
	return &MonotonicIDGenerator{now: time.Now}
}

// NewMonotonicIDGeneratorWithClock is used by tests to freeze time.
func NewMonotonicIDGeneratorWithClock(now func() time.Time) *MonotonicIDGenerator {
	return &MonotonicIDGenerator{now: now}
}

// Next returns max(now in ms, previous+1).
func (g *MonotonicIDGenerator) Next() OrderID {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return OrderID(next)
		}
	}
}

// Observe raises the floor so that every later id is greater than id.
// Called at startup with the highest id already in the store.
func (g *MonotonicIDGenerator) Observe(id OrderID) {
	for {
		prev := g.last.Load()
		if int64(id) <= prev || g.last.CompareAndSwap(prev, int64(id)) {
			return
		}
	}
}
