package testutil

import (
	"sync"
	"time"
)

// TickingClock returns monotonically increasing timestamps starting at
// start, advancing by step on every call. Use its Now method as a
// Logger's timestamp source to make log ordering deterministic.
type TickingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewTickingClock creates a clock whose first Now() returns start.
func NewTickingClock(start time.Time, step time.Duration) *TickingClock {
	return &TickingClock{next: start, step: step}
}

func (c *TickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}
