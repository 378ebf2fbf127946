package engine

import (
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// quietConfig disables spawning and particles so tests control every entity
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.DataSpawnChance = 0
	cfg.GradientSpawnChance = 0
	cfg.MaxParticles = 0
	return cfg
}

func newTestEngine(cfg Config, opts ...Option) *Engine {
	opts = append([]Option{WithRand(NewRand(7))}, opts...)
	return New(cfg, testEpoch, opts...)
}

// frameTime returns the timestamp of frame n at 60 FPS
func frameTime(n int) time.Time {
	return testEpoch.Add(time.Duration(n) * 16 * time.Millisecond)
}
