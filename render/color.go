package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/vmath"
)

// Color is a palette color with straight alpha in [0,1]
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent draws nothing
var Transparent = Color{}

// With attaches alpha to a palette color
func With(c visual.RGB, alpha float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: vmath.Clamp(alpha, 0, 1)}
}

// RGB drops the alpha channel
func (c Color) RGB() visual.RGB {
	return visual.RGB{R: c.R, G: c.G, B: c.B}
}

// Scale multiplies alpha by f
func (c Color) Scale(f float64) Color {
	c.A = vmath.Clamp(c.A*f, 0, 1)
	return c
}

// Visible reports whether drawing c changes any pixel
func (c Color) Visible() bool {
	return c.A > 0
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst visual.RGB, src Color) visual.RGB {
	if src.A <= 0 {
		return dst
	}
	if src.A >= 1 {
		return src.RGB()
	}
	inv := 1.0 - src.A
	return visual.RGB{
		R: uint8(float64(src.R)*src.A + float64(dst.R)*inv + 0.5),
		G: uint8(float64(src.G)*src.A + float64(dst.G)*inv + 0.5),
		B: uint8(float64(src.B)*src.A + float64(dst.B)*inv + 0.5),
	}
}

// Mix interpolates two palette colors in CIE-Lab, t clamped to [0,1]
func Mix(a, b visual.RGB, t float64) visual.RGB {
	t = vmath.Clamp(t, 0, 1)
	ca := toColorful(a)
	cb := toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return visual.RGB{R: r, G: g, B: bl}
}

func toColorful(c visual.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
