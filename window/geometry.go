package window

import (
	"math"

	"github.com/lixenwraith/netviz/render"
)

// dashSegments splits a line into its visible dash pieces; an empty or zero pattern yields the whole line
func dashSegments(x1, y1, x2, y2 float64, dash []float64) [][4]float64 {
	var period float64
	for _, d := range dash {
		period += max(d, 0)
	}
	if len(dash) == 0 || period <= 0 {
		return [][4]float64{{x1, y1, x2, y2}}
	}

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length

	var segs [][4]float64
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(dash) {
		step := max(dash[i], 0)
		end := min(pos+step, length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [4]float64{x1 + ux*pos, y1 + uy*pos, x1 + ux*end, y1 + uy*end})
		}
		pos = end
	}
	return segs
}

// glowRing is one filled disc of a stacked radial glow, drawn outermost first
type glowRing struct {
	frac  float64 // radius as a fraction of the glow radius
	color render.Color
}

// glowRings approximates a radial gradient with n stacked discs
// Each disc's alpha is corrected so the composite over its band matches the gradient
func glowRings(stops []render.GradientStop, n int) []glowRing {
	if len(stops) == 0 || n <= 0 {
		return nil
	}
	rings := make([]glowRing, 0, n)
	acc := 0.0
	for k := n - 1; k >= 0; k-- {
		target := render.GlowAt(stops, (float64(k)+0.5)/float64(n))
		a := 0.0
		if target.A > acc && acc < 1 {
			a = (target.A - acc) / (1 - acc)
		}
		acc += (1 - acc) * a
		c := target
		c.A = a
		rings = append(rings, glowRing{frac: float64(k+1) / float64(n), color: c})
	}
	return rings
}
