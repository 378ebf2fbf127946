package canvas

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// GIFRecorder collects every n-th frame into an animated GIF
type GIFRecorder struct {
	every  int
	delay  int // 1/100 s per kept frame
	seen   int
	frames []*image.Paletted
	delays []int
}

// NewGIFRecorder keeps one frame in every, each shown for frameMs*every milliseconds
func NewGIFRecorder(every, frameMs int) *GIFRecorder {
	every = max(every, 1)
	return &GIFRecorder{
		every: every,
		delay: max(frameMs*every/10, 1),
	}
}

// Add quantizes img to the Plan 9 palette if it is a kept frame
func (g *GIFRecorder) Add(img image.Image) {
	g.seen++
	if (g.seen-1)%g.every != 0 {
		return
	}
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	g.frames = append(g.frames, p)
	g.delays = append(g.delays, g.delay)
}

// Len returns the number of kept frames
func (g *GIFRecorder) Len() int {
	return len(g.frames)
}

// Encode writes the animation, looping forever
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}
	anim := &gif.GIF{Image: g.frames, Delay: g.delays, LoopCount: 0}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
