package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInitialValues(t *testing.T) {
	e := newTestEngine(quietConfig())

	assert.Equal(t, 1, e.Metrics.Epoch)
	assert.Equal(t, 2.302, e.Metrics.Loss)
	assert.Equal(t, 0.12, e.Metrics.Accuracy)
	assert.Equal(t, testEpoch, e.Metrics.LastUpdate)
}

func TestMetricsWaitForInterval(t *testing.T) {
	clock := NewStepClock(testEpoch, 16*time.Millisecond)
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)

	clock.Advance(2999 * time.Millisecond)
	e.Step(clock.Now())
	assert.Equal(t, 1, e.Metrics.Epoch)

	clock.Advance(time.Millisecond)
	e.Step(clock.Now())
	assert.Equal(t, 2, e.Metrics.Epoch)
	assert.Equal(t, clock.Now(), e.Metrics.LastUpdate)

	// The interval restarts from the update, not from the origin
	clock.Advance(1500 * time.Millisecond)
	e.Step(clock.Now())
	assert.Equal(t, 2, e.Metrics.Epoch)
}

func TestMetricsAtMostOncePerStep(t *testing.T) {
	clock := NewStepClock(testEpoch, 16*time.Millisecond)
	e := newTestEngine(quietConfig())
	e.Build(1024, 768)

	// A long stall still yields a single epoch
	clock.Advance(30 * time.Second)
	e.Step(clock.Now())
	assert.Equal(t, 2, e.Metrics.Epoch)
}

func TestMetricsDrift(t *testing.T) {
	// 0.5 gives decay 0.9 and accuracy gain gap*0.5*0.15
	e := New(quietConfig(), testEpoch, WithRand(NewSequenceRand(0.5)))
	e.Build(1024, 768)

	e.Step(testEpoch.Add(3 * time.Second))

	assert.InDelta(t, 2.302*0.9, e.Metrics.Loss, 1e-12)
	assert.InDelta(t, 0.12+(0.99-0.12)*0.5*0.15, e.Metrics.Accuracy, 1e-12)
}

func TestMetricsMonotonicAndBounded(t *testing.T) {
	var epochs []Metrics
	clock := NewStepClock(testEpoch, 16*time.Millisecond)
	e := newTestEngine(quietConfig(), WithHooks(Hooks{
		OnEpoch: func(m Metrics) { epochs = append(epochs, m) },
	}))
	e.Build(1024, 768)

	prev := e.Metrics
	for i := 0; i < 500; i++ {
		clock.Advance(3 * time.Second)
		e.Step(clock.Now())

		m := e.Metrics
		require.Equal(t, prev.Epoch+1, m.Epoch)
		require.LessOrEqual(t, m.Loss, prev.Loss)
		require.GreaterOrEqual(t, m.Loss, 0.01)
		require.GreaterOrEqual(t, m.Accuracy, prev.Accuracy)
		require.LessOrEqual(t, m.Accuracy, 0.99)
		require.Less(t, m.Accuracy, 1.0)
		prev = m
	}

	assert.Equal(t, 0.01, e.Metrics.Loss, "loss settles on the floor")
	assert.Greater(t, e.Metrics.Accuracy, 0.9)
	assert.Len(t, epochs, 500)
	assert.Equal(t, 501, epochs[len(epochs)-1].Epoch)
}

func TestMetricsFloorAboveLossKeepsLoss(t *testing.T) {
	cfg := quietConfig()
	cfg.LossFloor = 5
	e := newTestEngine(cfg)
	e.Build(1024, 768)

	e.Step(testEpoch.Add(3 * time.Second))
	assert.Equal(t, 2.302, e.Metrics.Loss)
}

func TestMetricsIndependentOfPackets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataSpawnChance = 1
	cfg.GradientSpawnChance = 1
	e := newTestEngine(cfg)
	e.Build(1024, 768)

	// 150 frames of 16ms stay below the 3s interval
	for i := 1; i <= 150; i++ {
		e.Step(frameTime(i))
	}
	assert.Positive(t, e.Delivered(PacketData))
	assert.Equal(t, 1, e.Metrics.Epoch)
}
