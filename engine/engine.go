package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/netviz/parameter"
)

// Hooks are optional callbacks fired from inside Build and Step
type Hooks struct {
	OnRebuild   func(width, height float64, class SizeClass)
	OnEpoch     func(m Metrics)
	OnDelivered func(kind PacketKind)
}

// Engine owns the whole animation state for one surface
// All methods must be called from a single goroutine
type Engine struct {
	Scene   Scene
	Pointer Pointer
	Metrics Metrics

	cfg   Config
	rng   Rand
	log   *slog.Logger
	hooks Hooks

	start     time.Time
	elapsed   time.Duration
	frame     uint64
	delivered [2]uint64 // indexed by PacketKind
}

// Option configures an Engine
type Option func(*Engine)

// WithRand replaces the default unseeded random source
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithLogger sets the logger, slog.Default is used otherwise
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithHooks installs event callbacks
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// New creates an engine whose time origin and first metrics timestamp is now
// The scene is empty until Build is called
func New(cfg Config, now time.Time, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		start: now,
		Pointer: Pointer{
			Radius: cfg.PointerRadius,
		},
		Metrics: Metrics{
			Epoch:      parameter.InitialEpoch,
			Loss:       parameter.InitialLoss,
			Accuracy:   parameter.InitialAccuracy,
			LastUpdate: now,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewUnseededRand()
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	return e
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Elapsed returns time since the engine origin as of the last Step
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// ElapsedMs returns Elapsed in fractional milliseconds, the unit of all phase rates
func (e *Engine) ElapsedMs() float64 {
	return float64(e.elapsed) / float64(time.Millisecond)
}

// Frame returns the number of completed steps
func (e *Engine) Frame() uint64 {
	return e.frame
}

// PointerMove records a pointer position in surface coordinates
func (e *Engine) PointerMove(x, y float64) {
	e.Pointer.X = x
	e.Pointer.Y = y
	e.Pointer.Present = true
}

// PointerLeave marks the pointer absent
func (e *Engine) PointerLeave() {
	e.Pointer.Present = false
}

// Delivered returns how many packets of kind reached their target
func (e *Engine) Delivered(kind PacketKind) uint64 {
	if int(kind) >= len(e.delivered) {
		return 0
	}
	return e.delivered[kind]
}
