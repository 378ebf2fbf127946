package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/netviz/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; math.Log2(0) is -Inf so 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, WaveSine, rate), duration, attack, release, rate)
}

// EpochChime is two rising notes with a soft octave overtone, played on every epoch
func EpochChime(rate beep.SampleRate, volume float64) beep.Streamer {
	first := beep.Mix(
		note(parameter.ChimeNote1Freq, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate),
		newVolume(note(parameter.ChimeNote1Freq*2, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate),
			parameter.ChimeOvertoneLevel),
	)
	second := note(parameter.ChimeNote2Freq, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	return newVolume(beep.Seq(first, second), parameter.ChimeLevel*volume)
}

// GradientTick is a short high blip for a gradient reaching the parameter server
func GradientTick(rate beep.SampleRate, volume float64) beep.Streamer {
	return newVolume(note(parameter.TickFreq, parameter.TickDuration, parameter.TickAttack, parameter.TickRelease, rate),
		parameter.TickLevel*volume)
}
