package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/status"
)

// LoopState is the frame loop state; a loop is paused until Start
type LoopState uint8

const (
	LoopPaused LoopState = iota
	LoopRunning
)

func (s LoopState) String() string {
	if s == LoopRunning {
		return "running"
	}
	return "paused"
}

// RenderFunc draws the engine state after a step
type RenderFunc func(e *Engine, ts time.Time)

// Loop drives Step and render from a FrameScheduler, one frame in flight at most
type Loop struct {
	engine *Engine
	sched  FrameScheduler
	render RenderFunc
	clock  *PausableClock
	stats  *loopStats
	log    *slog.Logger

	state      LoopState
	started    bool
	pending    FrameID
	hasPending bool

	// OnStateChange is called after every state transition
	OnStateChange func(LoopState)
}

// NewLoop wires an engine to a scheduler; render may be nil
func NewLoop(e *Engine, sched FrameScheduler, render RenderFunc) *Loop {
	return &Loop{
		engine: e,
		sched:  sched,
		render: render,
		log:    e.log,
	}
}

// UseClock pauses and resumes clock together with the loop
func (l *Loop) UseClock(clock *PausableClock) {
	l.clock = clock
}

// UseStatus publishes frame statistics to reg
func (l *Loop) UseStatus(reg *status.Registry) {
	if reg == nil {
		l.stats = nil
		return
	}
	l.stats = newLoopStats(reg)
}

// Engine returns the driven engine
func (l *Loop) Engine() *Engine {
	return l.engine
}

// State returns the current loop state
func (l *Loop) State() LoopState {
	return l.state
}

// Start performs the first layout and schedules the first frame
func (l *Loop) Start(width, height float64) {
	l.engine.Build(width, height)
	l.started = true
	l.setState(LoopRunning)
	l.schedule()
}

// SetHidden pauses on hidden and resumes on visible
// Pausing cancels only the next scheduled frame
func (l *Loop) SetHidden(hidden bool) {
	if !l.started {
		return
	}
	if hidden {
		if l.state != LoopRunning {
			return
		}
		if l.hasPending {
			l.sched.CancelFrame(l.pending)
			l.hasPending = false
		}
		l.setState(LoopPaused)
		return
	}

	if l.state == LoopPaused {
		l.setState(LoopRunning)
		l.schedule()
	}
}

// Resize rebuilds the scene without touching the loop state
func (l *Loop) Resize(width, height float64) {
	l.engine.Build(width, height)
}

func (l *Loop) setState(s LoopState) {
	if l.state == s {
		return
	}
	l.state = s

	if l.clock != nil {
		if s == LoopPaused {
			l.clock.Pause()
		} else {
			l.clock.Resume()
		}
	}
	if l.stats != nil {
		l.stats.paused(s == LoopPaused)
	}

	l.log.Info("loop state", "state", s.String(), "frame", l.engine.Frame())

	if l.OnStateChange != nil {
		l.OnStateChange(s)
	}
}

func (l *Loop) schedule() {
	if l.hasPending {
		return
	}
	l.pending = l.sched.RequestFrame(l.tick)
	l.hasPending = true
}

func (l *Loop) tick(ts time.Time) {
	l.hasPending = false

	l.engine.Step(ts)
	if l.render != nil {
		l.render(l.engine, ts)
	}
	if l.stats != nil {
		l.stats.observe(l.engine, ts)
	}

	if l.state == LoopRunning {
		l.schedule()
	}
}

// loopStats caches registry pointers so the frame path never locks
type loopStats struct {
	frames     *status.Gauge
	fps        *status.Gauge
	pausedFlag *status.Gauge
	particles  *status.Gauge
	neurons    *status.Gauge
	data       *status.Gauge
	gradient   *status.Gauge
	epoch      *status.Gauge
	delivered  *atomic.Int64

	windowStart  time.Time
	windowFrames int
}

func newLoopStats(reg *status.Registry) *loopStats {
	return &loopStats{
		frames:     reg.Gauge(status.Frames),
		fps:        reg.Gauge(status.FPS),
		pausedFlag: reg.Gauge(status.Paused),
		particles:  reg.Gauge(status.Particles),
		neurons:    reg.Gauge(status.Neurons),
		data:       reg.Gauge(status.DataPackets),
		gradient:   reg.Gauge(status.GradientPackets),
		epoch:      reg.Gauge(status.Epoch),
		delivered:  reg.Counter(status.Delivered),
	}
}

func (s *loopStats) paused(p bool) {
	if p {
		s.pausedFlag.Set(1)
		// A pause breaks the sampling window
		s.windowStart = time.Time{}
		s.windowFrames = 0
		return
	}
	s.pausedFlag.Set(0)
}

func (s *loopStats) observe(e *Engine, ts time.Time) {
	s.frames.Set(float64(e.Frame()))
	s.particles.Set(float64(len(e.Scene.Particles)))
	s.neurons.Set(float64(e.Scene.NeuronCount()))
	s.data.Set(float64(len(e.Scene.DataPackets)))
	s.gradient.Set(float64(len(e.Scene.GradientPackets)))
	s.epoch.Set(float64(e.Metrics.Epoch))
	s.delivered.Store(int64(e.Delivered(PacketData) + e.Delivered(PacketGradient)))

	if s.windowStart.IsZero() {
		s.windowStart = ts
		s.windowFrames = 0
		return
	}
	s.windowFrames++
	if span := ts.Sub(s.windowStart); span >= parameter.FPSWindow {
		s.fps.Set(float64(s.windowFrames) / span.Seconds())
		s.windowStart = ts
		s.windowFrames = 0
	}
}
