package engine

import (
	"sync"
	"time"
)

// PausableClock derives animation time from a base provider, frozen while paused
// Hosts pause it with the loop so phases and the metrics interval skip hidden time
type PausableClock struct {
	mu sync.RWMutex

	base        TimeProvider
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock wraps base; nil selects the monotonic provider
func NewPausableClock(base TimeProvider) *PausableClock {
	if base == nil {
		base = NewMonotonicTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns base time minus accumulated pause time, frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPaused)
	}
	return pc.base.Now().Add(-pc.totalPaused)
}

// Pause freezes the clock, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume continues the clock from where it was frozen
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.base.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused reports the pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
