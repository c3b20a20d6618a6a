package modes

import (
	"sync"
	"time"
)

// Clock measures play time, excluding pauses
type Clock struct {
	mu sync.Mutex

	now         func() time.Time
	start       time.Time
	pauseStart  time.Time
	totalPaused time.Duration
	paused      bool
}

// NewClock creates a running clock; now defaults to time.Now
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Reset restarts the clock from zero, unpaused
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.now()
	c.pauseStart = time.Time{}
	c.totalPaused = 0
	c.paused = false
}

// Pause freezes Elapsed; no-op if already paused
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now()
}

// Resume continues after a Pause
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.totalPaused += c.now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// Toggle flips pause state and returns true when now paused
func (c *Clock) Toggle() bool {
	c.mu.Lock()
	paused := c.paused
	c.mu.Unlock()

	if paused {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// Paused returns current pause state
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Elapsed returns unpaused time since start or the last Reset
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.now()
	if c.paused {
		end = c.pauseStart
	}
	return end.Sub(c.start) - c.totalPaused
}
