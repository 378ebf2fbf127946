// Package config loads the TOML configuration shared by every host
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/netviz/audio"
	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/input"
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/parameter/visual"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full host configuration
type Config struct {
	Engine   engine.Config  `toml:"engine"`
	Render   RenderConfig   `toml:"render"`
	Terminal TerminalConfig `toml:"terminal"`
	Audio    audio.Config   `toml:"audio"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	// Keys overrides default bindings, key name to action name
	Keys map[string]string `toml:"keys"`
}

// RenderConfig selects the palette and overlays
type RenderConfig struct {
	Theme string `toml:"theme"`
	HUD   bool   `toml:"hud"`
	Debug bool   `toml:"debug"`
}

// TerminalConfig tunes the terminal host
type TerminalConfig struct {
	FPS   int    `toml:"fps"`
	Color string `toml:"color"` // auto, truecolor, 256
	Mouse bool   `toml:"mouse"`
}

// SnapshotConfig drives headless rendering
type SnapshotConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Frames int    `toml:"frames"`
	StepMs int    `toml:"step_ms"`
	Seed   uint64 `toml:"seed"`
	Out    string `toml:"out"`
	GIF    string `toml:"gif"`
	// GIFEvery keeps one frame in n for the animation
	GIFEvery int `toml:"gif_every"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Engine: engine.DefaultConfig(),
		Render: RenderConfig{
			Theme: string(visual.ThemeDark),
			HUD:   true,
		},
		Terminal: TerminalConfig{
			FPS:   60,
			Color: "auto",
			Mouse: true,
		},
		Audio: audio.DefaultConfig(),
		Snapshot: SnapshotConfig{
			Width:    1024,
			Height:   768,
			Frames:   180,
			StepMs:   16,
			Seed:     1,
			Out:      "netviz.png",
			GIFEvery: 3,
		},
	}
}

// Load reads path over the defaults; keys missing from the file keep their default
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	e := c.Engine
	if e.MobileBreakpoint < 0 {
		bad("engine.mobile_breakpoint %v < 0", e.MobileBreakpoint)
	}
	if e.ParticleArea <= 0 {
		bad("engine.particle_area %v must be positive", e.ParticleArea)
	}
	if e.MaxParticles < 0 {
		bad("engine.max_particles %d < 0", e.MaxParticles)
	}
	if e.PointerRadius < 0 {
		bad("engine.pointer_radius %v < 0", e.PointerRadius)
	}
	if e.Friction <= 0 || e.Friction > 1 {
		bad("engine.friction %v outside (0,1]", e.Friction)
	}
	if e.DataSpawnChance < 0 || e.DataSpawnChance > 1 {
		bad("engine.data_spawn_chance %v outside [0,1]", e.DataSpawnChance)
	}
	if e.GradientSpawnChance < 0 || e.GradientSpawnChance > 1 {
		bad("engine.gradient_spawn_chance %v outside [0,1]", e.GradientSpawnChance)
	}
	if e.MetricsIntervalMs <= 0 {
		bad("engine.metrics_interval_ms %d must be positive", e.MetricsIntervalMs)
	}
	if e.LossFloor < 0 {
		bad("engine.loss_floor %v < 0", e.LossFloor)
	}
	if e.AccuracyCeiling <= 0 || e.AccuracyCeiling >= 1 {
		bad("engine.accuracy_ceiling %v outside (0,1)", e.AccuracyCeiling)
	}
	for i, n := range e.DesktopLayers {
		if n < 0 {
			bad("engine.desktop_layers[%d] = %d < 0", i, n)
		}
	}
	for i, n := range e.MobileLayers {
		if n < 0 {
			bad("engine.mobile_layers[%d] = %d < 0", i, n)
		}
	}

	if _, err := visual.ParseTheme(c.Render.Theme); err != nil {
		bad("render.theme: %v", err)
	}

	if c.Terminal.FPS < parameter.FrameRateMin || c.Terminal.FPS > parameter.FrameRateMax {
		bad("terminal.fps %d outside [%d,%d]", c.Terminal.FPS, parameter.FrameRateMin, parameter.FrameRateMax)
	}
	switch c.Terminal.Color {
	case "", "auto", "truecolor", "24bit", "256":
	default:
		bad("terminal.color %q", c.Terminal.Color)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume %v outside [0,1]", c.Audio.Volume)
	}

	if _, err := c.KeyTable(); err != nil {
		bad("keys: %v", err)
	}

	s := c.Snapshot
	if s.Width <= 0 || s.Height <= 0 {
		bad("snapshot size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Frames < 1 {
		bad("snapshot.frames %d < 1", s.Frames)
	}
	if s.StepMs <= 0 {
		bad("snapshot.step_ms %d must be positive", s.StepMs)
	}
	if s.GIFEvery < 1 {
		bad("snapshot.gif_every %d < 1", s.GIFEvery)
	}

	return errors.Join(errs...)
}

// KeyTable returns the default bindings with Keys applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if err := kt.Bind(c.Keys); err != nil {
		return nil, err
	}
	return kt, nil
}
