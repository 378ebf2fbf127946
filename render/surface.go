package render

import "github.com/lixenwraith/netviz/parameter/visual"

// GradientStop is one color stop of a radial glow; Offset runs 0 (center) to 1 (edge)
type GradientStop struct {
	Offset float64
	Color  Color
}

// Surface is a 2D drawing target in logical pixels
// Implementations: terminal half-block raster, gg offscreen image, ebiten window
type Surface interface {
	Size() (width, height float64)
	Clear(bg visual.RGB)

	// Line strokes a segment; a non-empty dash alternates on/off lengths
	Line(x1, y1, x2, y2, width float64, dash []float64, c Color)

	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)

	// RadialGlow fills a disc of radius r shaded by stops interpolated from the center outward
	RadialGlow(x, y, r float64, stops []GradientStop)

	FillRect(x, y, w, h float64, c Color)
	FillRoundedRect(x, y, w, h, radius float64, c Color)
	StrokeRoundedRect(x, y, w, h, radius, width float64, c Color)

	// Text draws s with its top-left corner at (x, y); size is a nominal pixel height
	Text(x, y float64, s string, size float64, c Color)
}

// GlowAt returns the color of a radial glow at normalized distance t from its center
// Stops must be sorted by Offset; outside the stop range the nearest stop applies
func GlowAt(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		// Transparent stops keep the neighbour's hue, as a canvas gradient does
		ca, cb := a.Color, b.Color
		if !ca.Visible() {
			ca = Color{R: cb.R, G: cb.G, B: cb.B}
		}
		if !cb.Visible() {
			cb = Color{R: ca.R, G: ca.G, B: ca.B}
		}
		return Color{
			R: uint8(float64(ca.R) + (float64(cb.R)-float64(ca.R))*f + 0.5),
			G: uint8(float64(ca.G) + (float64(cb.G)-float64(ca.G))*f + 0.5),
			B: uint8(float64(ca.B) + (float64(cb.B)-float64(ca.B))*f + 0.5),
			A: ca.A + (cb.A-ca.A)*f,
		}
	}
	return stops[len(stops)-1].Color
}
