// Package canvas renders frames offscreen with gg for PNG and GIF export
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
)

// Canvas is a render.Surface backed by a gg context
type Canvas struct {
	dc   *gg.Context
	face font.Face
}

// New creates a w x h canvas
func New(w, h int) *Canvas {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	face := basicfont.Face7x13
	dc.SetFontFace(face)
	return &Canvas{dc: dc, face: face}
}

// Image returns the backing image; it is reused by the next frame
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the current frame as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func nrgba(c render.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(c.A*255 + 0.5)}
}

func (c *Canvas) setColor(col render.Color) {
	c.dc.SetColor(nrgba(col))
}

// Size implements render.Surface
func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Clear implements render.Surface
func (c *Canvas) Clear(bg visual.RGB) {
	c.dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	c.dc.Clear()
}

// Line implements render.Surface
func (c *Canvas) Line(x1, y1, x2, y2, width float64, dash []float64, col render.Color) {
	if !col.Visible() {
		return
	}
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetDash(dash...)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
	c.dc.SetDash()
}

// FillCircle implements render.Surface
func (c *Canvas) FillCircle(x, y, r float64, col render.Color) {
	if !col.Visible() || r <= 0 {
		return
	}
	c.setColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

// StrokeCircle implements render.Surface
func (c *Canvas) StrokeCircle(x, y, r, width float64, col render.Color) {
	if !col.Visible() || r <= 0 {
		return
	}
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(x, y, r)
	c.dc.Stroke()
}

// RadialGlow implements render.Surface
func (c *Canvas) RadialGlow(x, y, r float64, stops []render.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	g := gg.NewRadialGradient(x, y, 0, x, y, r)
	for i, s := range stops {
		col := s.Color
		// Fully transparent stops borrow the neighbour's hue so the fade does not darken
		if !col.Visible() {
			col = render.GlowAt(stops, neighbourOffset(stops, i))
			col.A = 0
		}
		g.AddColorStop(s.Offset, nrgba(col))
	}
	c.dc.SetFillStyle(g)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func neighbourOffset(stops []render.GradientStop, i int) float64 {
	if i > 0 {
		return stops[i-1].Offset
	}
	if i+1 < len(stops) {
		return stops[i+1].Offset
	}
	return stops[i].Offset
}

// FillRect implements render.Surface
func (c *Canvas) FillRect(x, y, w, h float64, col render.Color) {
	if !col.Visible() {
		return
	}
	c.setColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// FillRoundedRect implements render.Surface
func (c *Canvas) FillRoundedRect(x, y, w, h, radius float64, col render.Color) {
	if !col.Visible() {
		return
	}
	c.setColor(col)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Fill()
}

// StrokeRoundedRect implements render.Surface
func (c *Canvas) StrokeRoundedRect(x, y, w, h, radius, width float64, col render.Color) {
	if !col.Visible() {
		return
	}
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Stroke()
}

// Text implements render.Surface with the fixed 7x13 face; size is ignored
func (c *Canvas) Text(x, y float64, s string, size float64, col render.Color) {
	if !col.Visible() {
		return
	}
	c.setColor(col)
	ascent := float64(c.face.Metrics().Ascent.Round())
	c.dc.DrawString(s, x, y+ascent)
}
