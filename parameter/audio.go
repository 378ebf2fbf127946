package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.4
)

// Epoch chime: two rising sine notes
const (
	ChimeNote1Freq     = 659.25 // E5
	ChimeNote2Freq     = 987.77 // B5
	ChimeNoteDuration  = 120 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeRelease       = 80 * time.Millisecond
	ChimeOvertoneLevel = 0.25
	ChimeLevel         = 0.5
)

// Gradient arrival tick
const (
	TickFreq     = 1318.51 // E6
	TickDuration = 30 * time.Millisecond
	TickAttack   = 2 * time.Millisecond
	TickRelease  = 20 * time.Millisecond
	TickLevel    = 0.15

	// TickMinGap drops ticks arriving faster than this
	TickMinGap = 80 * time.Millisecond
)
