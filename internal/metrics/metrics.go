// Package metrics holds the in-process counters and timers the server logs.
package metrics

import (
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing count, safe for concurrent use.
type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() uint64 {
	return c.value.Add(1)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
}

// Timer measures elapsed time since it was started.
type Timer struct {
	start time.Time
	now   func() time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now(), now: time.Now}
}

func (t *Timer) Duration() time.Duration {
	return t.now().Sub(t.start)
}
