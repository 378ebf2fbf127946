package engine

import (
	"sync"
	"time"
)

// StepClock is a TimeProvider that only moves when told to
// Tests and the headless snapshot host drive it one frame at a time
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	ticks uint64
}

// NewStepClock starts at start; Tick advances by step
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now implements TimeProvider
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Tick advances one frame step and returns the new time
func (c *StepClock) Tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	c.ticks++
	return c.now
}

// Ticks returns how many times Tick was called
func (c *StepClock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Advance jumps by d without counting a tick
func (c *StepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
