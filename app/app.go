// Package app wires engine, loop, renderers and sound into one host-independent controller
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/netviz/audio"
	"github.com/lixenwraith/netviz/config"
	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/input"
	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/render/renderers"
	"github.com/lixenwraith/netviz/status"
)

// Options configures a Controller; zero fields get production defaults
type Options struct {
	Config config.Config
	Rand   engine.Rand
	Time   engine.TimeProvider
	Logger *slog.Logger
	// Sound is optional, a nil manager plays nothing
	Sound *audio.SoundManager
}

// Controller owns one running visualization
// All methods must be called from the host's frame goroutine
type Controller struct {
	Clock  *engine.PausableClock
	Status *status.Registry

	engine  *engine.Engine
	loop    *engine.Loop
	sched   *engine.ManualScheduler
	orch    *render.RenderOrchestrator
	toggles renderers.Toggles
	keys    *input.KeyTable
	sound   *audio.SoundManager
	log     *slog.Logger

	surface render.Surface
	focused bool
	paused  bool // manual pause, independent of focus
	quit    bool
}

// New builds a controller drawing to surface; Start must be called before frames run
func New(opts Options, surface render.Surface) (*Controller, error) {
	cfg := opts.Config
	theme, err := visual.ParseTheme(cfg.Render.Theme)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = engine.NewUnseededRand()
	}

	c := &Controller{
		Clock:   engine.NewPausableClock(opts.Time),
		Status:  status.NewRegistry(),
		sched:   engine.NewManualScheduler(),
		orch:    render.NewRenderOrchestrator(theme),
		keys:    keys,
		sound:   opts.Sound,
		log:     log,
		surface: surface,
		focused: true,
	}

	c.engine = engine.New(cfg.Engine, c.Clock.Now(),
		engine.WithRand(rng),
		engine.WithLogger(log),
		engine.WithHooks(engine.Hooks{
			OnEpoch:     c.onEpoch,
			OnDelivered: c.onDelivered,
		}),
	)

	c.toggles = renderers.RegisterDefaults(c.orch, c.Status)
	c.toggles.HUD.SetVisible(cfg.Render.HUD)
	c.toggles.Debug.SetVisible(cfg.Render.Debug)

	c.loop = engine.NewLoop(c.engine, c.sched, c.draw)
	c.loop.UseClock(c.Clock)
	c.loop.UseStatus(c.Status)

	return c, nil
}

func (c *Controller) draw(e *engine.Engine, ts time.Time) {
	if c.surface != nil {
		c.orch.RenderFrame(c.surface, e, ts)
	}
}

func (c *Controller) onEpoch(m engine.Metrics) {
	if c.sound != nil {
		c.sound.PlayEpoch()
	}
}

func (c *Controller) onDelivered(kind engine.PacketKind) {
	if c.sound != nil && kind == engine.PacketGradient {
		c.sound.PlayGradient(c.Clock.Now())
	}
}

// Engine returns the driven engine
func (c *Controller) Engine() *engine.Engine {
	return c.engine
}

// Loop returns the frame loop
func (c *Controller) Loop() *engine.Loop {
	return c.loop
}

// Theme returns the active theme
func (c *Controller) Theme() visual.Theme {
	return c.orch.Theme()
}

// Toggles returns the switchable overlay renderers
func (c *Controller) Toggles() renderers.Toggles {
	return c.toggles
}

// SetSurface replaces the drawing target, used by hosts whose target changes per frame
func (c *Controller) SetSurface(s render.Surface) {
	c.surface = s
}

// Start lays out the scene and schedules the first frame
func (c *Controller) Start(width, height float64) {
	c.log.Info("start", "width", width, "height", height, "theme", string(c.orch.Theme()))
	c.loop.Start(width, height)
}

// Frame runs the pending frame, if any, and reports whether one ran
func (c *Controller) Frame() bool {
	return c.sched.Fire(c.Clock.Now()) > 0
}

// Resize rebuilds the scene for a new surface size
func (c *Controller) Resize(width, height float64) {
	c.log.Debug("resize", "width", width, "height", height)
	c.loop.Resize(width, height)
}

// PointerMove forwards a pointer position in surface coordinates
func (c *Controller) PointerMove(x, y float64) {
	c.engine.PointerMove(x, y)
}

// PointerLeave marks the pointer absent
func (c *Controller) PointerLeave() {
	c.engine.PointerLeave()
}

// SetFocused reports host visibility; the loop pauses while unfocused or manually paused
func (c *Controller) SetFocused(focused bool) {
	c.focused = focused
	c.syncHidden()
}

// Paused reports the manual pause flag
func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) syncHidden() {
	c.loop.SetHidden(c.paused || !c.focused)
}

// HandleKey resolves a key press through the key table and applies it
func (c *Controller) HandleKey(k input.Key, r rune) {
	c.Handle(c.keys.Lookup(k, r))
}

// Handle applies an intent
func (c *Controller) Handle(intent input.Intent) {
	switch intent {
	case input.IntentQuit:
		c.quit = true
	case input.IntentPause:
		c.paused = !c.paused
		c.syncHidden()
	case input.IntentTheme:
		c.orch.SetTheme(c.orch.Theme().Toggle())
	case input.IntentDebug:
		c.toggles.Debug.Toggle()
	case input.IntentHUD:
		c.toggles.HUD.SetVisible(!c.toggles.HUD.IsVisible())
	case input.IntentSound:
		if c.sound != nil {
			c.sound.ToggleMute()
		}
	default:
		return
	}
	c.log.Debug("intent", "intent", intent.String())
}

// Quit reports whether a quit intent was received
func (c *Controller) Quit() bool {
	return c.quit
}
