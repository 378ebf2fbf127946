package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	base := NewStepClock(testEpoch, 16*time.Millisecond)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	if got := pc.Now(); !got.Equal(testEpoch.Add(time.Second)) {
		t.Fatalf("Now() = %v before pause", got)
	}

	pc.Pause()
	frozen := pc.Now()
	base.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Now() moved while paused: %v != %v", got, frozen)
	}
	if got := pc.TotalPaused(); got != 5*time.Second {
		t.Errorf("TotalPaused() during pause = %v, want 5s", got)
	}

	pc.Resume()
	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Now() after resume = %v, want %v", got, frozen)
	}
	base.Advance(time.Second)
	if got := pc.Now(); !got.Equal(frozen.Add(time.Second)) {
		t.Errorf("Now() = %v, want %v", got, frozen.Add(time.Second))
	}
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	base := NewStepClock(testEpoch, 16*time.Millisecond)
	pc := NewPausableClock(base)

	pc.Resume()
	if pc.IsPaused() {
		t.Fatal("resume on a running clock paused it")
	}

	pc.Pause()
	base.Advance(time.Second)
	pc.Pause()
	base.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	if got := pc.TotalPaused(); got != 2*time.Second {
		t.Errorf("TotalPaused() = %v, want 2s", got)
	}
}

func TestPausableClockDefaultsToMonotonic(t *testing.T) {
	pc := NewPausableClock(nil)
	a := pc.Now()
	b := pc.Now()
	if b.Before(a) {
		t.Errorf("monotonic clock went backwards: %v then %v", a, b)
	}
}

func TestStepClockTicks(t *testing.T) {
	c := NewStepClock(testEpoch, 16*time.Millisecond)
	if got := c.Tick(); !got.Equal(testEpoch.Add(16 * time.Millisecond)) {
		t.Errorf("Tick = %v, want epoch+16ms", got)
	}
	c.Advance(time.Second)
	c.Tick()
	if c.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2", c.Ticks())
	}
	if want := testEpoch.Add(time.Second + 32*time.Millisecond); !c.Now().Equal(want) {
		t.Errorf("Now = %v, want %v", c.Now(), want)
	}
}
