package engine

import (
	"time"

	"github.com/lixenwraith/netviz/parameter"
)

// Config holds the tunable animation constants
// Zero values are not meaningful; start from DefaultConfig
type Config struct {
	MobileBreakpoint float64 `toml:"mobile_breakpoint"`

	ParticleArea  float64 `toml:"particle_area"`
	MaxParticles  int     `toml:"max_particles"`
	PointerRadius float64 `toml:"pointer_radius"`
	RepelStrength float64 `toml:"repel_strength"`
	Friction      float64 `toml:"friction"`
	MinSpeed      float64 `toml:"min_speed"`
	Jitter        float64 `toml:"jitter"`

	DataSpawnChance     float64 `toml:"data_spawn_chance"`
	GradientSpawnChance float64 `toml:"gradient_spawn_chance"`

	MetricsIntervalMs int     `toml:"metrics_interval_ms"`
	LossFloor         float64 `toml:"loss_floor"`
	AccuracyCeiling   float64 `toml:"accuracy_ceiling"`

	DesktopLayers []int `toml:"desktop_layers"`
	MobileLayers  []int `toml:"mobile_layers"`
}

// DefaultConfig returns the stock animation constants
func DefaultConfig() Config {
	return Config{
		MobileBreakpoint: parameter.MobileBreakpoint,

		ParticleArea:  parameter.ParticleArea,
		MaxParticles:  parameter.ParticleMaxCount,
		PointerRadius: parameter.PointerRadius,
		RepelStrength: parameter.PointerRepelStrength,
		Friction:      parameter.ParticleFriction,
		MinSpeed:      parameter.ParticleMinSpeed,
		Jitter:        parameter.ParticleJitter,

		DataSpawnChance:     parameter.DataSpawnChance,
		GradientSpawnChance: parameter.GradientSpawnChance,

		MetricsIntervalMs: int(parameter.MetricsInterval / time.Millisecond),
		LossFloor:         parameter.LossFloor,
		AccuracyCeiling:   parameter.AccuracyCeiling,

		DesktopLayers: append([]int(nil), parameter.DesktopLayerSizes...),
		MobileLayers:  append([]int(nil), parameter.MobileLayerSizes...),
	}
}

// MetricsInterval returns the metric update period
func (c Config) MetricsInterval() time.Duration {
	return time.Duration(c.MetricsIntervalMs) * time.Millisecond
}
