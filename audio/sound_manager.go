package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/netviz/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player receives finished effect streamers; the speaker in production, a recorder in tests
type Player interface {
	Play(s beep.Streamer)
}

// speakerPlayer adds streamers to a mixer already playing on the speaker
type speakerPlayer struct {
	mixer *beep.Mixer
}

func (p *speakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SoundManager plays the epoch chime and gradient ticks
// Every method is safe on an uninitialized or disabled manager
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	player      Player
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time

	muted atomic.Bool
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds
func NewSoundManager(cfg Config) *SoundManager {
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.player = &speakerPlayer{mixer: sm.mixer}
	sm.initialized = true
	return nil
}

// UsePlayer routes effects to p instead of the speaker
func (sm *SoundManager) UsePlayer(p Player) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.player = p
	sm.initialized = p != nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if _, ok := sm.player.(*speakerPlayer); ok {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	sm.initialized = false
}

// IsMuted reports whether effects are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// PlayEpoch plays the epoch chime
func (sm *SoundManager) PlayEpoch() {
	sm.play(func() beep.Streamer { return EpochChime(sampleRate, sm.cfg.Volume) })
}

// PlayGradient plays a tick, rate-limited to one per TickMinGap
func (sm *SoundManager) PlayGradient(now time.Time) {
	sm.mu.Lock()
	if now.Sub(sm.lastTick) < parameter.TickMinGap {
		sm.mu.Unlock()
		return
	}
	sm.lastTick = now
	sm.mu.Unlock()

	sm.play(func() beep.Streamer { return GradientTick(sampleRate, sm.cfg.Volume) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	if sm.muted.Load() {
		return
	}
	sm.mu.Lock()
	p, ok := sm.player, sm.initialized
	sm.mu.Unlock()
	if !ok || p == nil {
		return
	}
	p.Play(build())
}
