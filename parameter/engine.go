package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the terminal host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameRateMin/Max bound the configurable frame rate
	FrameRateMin = 5
	FrameRateMax = 120

	// EventQueueSize is the capacity of the host event channel
	EventQueueSize = 256

	// FPSWindow is the sampling window for the measured frame rate
	FPSWindow = time.Second
)

// Terminal geometry: logical pixels covered by one character cell
// A cell renders two vertical sub-pixels with a half block glyph
const (
	CellPixelWidth  = 8.0
	CellPixelHeight = 16.0
)
