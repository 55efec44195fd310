// Package clock supplies message ids and display timestamps.
package clock

import (
	"sync"
	"time"
)

const displayLayout = "3:04 PM"

type Clock interface {
	// NextID returns a value strictly greater than every id it returned before.
	NextID() int64
	// Label renders the current time the way the chat view shows it.
	Label() string
	Now() time.Time
}

type systemClock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func New() Clock {
	return &systemClock{now: time.Now}
}

// NewWithSource is used by tests to pin the wall time.
func NewWithSource(now func() time.Time) Clock {
	return &systemClock{now: now}
}

func (c *systemClock) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

func (c *systemClock) Label() string {
	return c.now().Format(displayLayout)
}

func (c *systemClock) Now() time.Time {
	return c.now()
}
