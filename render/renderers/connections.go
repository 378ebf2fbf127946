package renderers

import (
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/vmath"
)

// ConnectionRenderer draws lines between particle pairs closer than ConnectionDistance
type ConnectionRenderer struct{}

// NewConnectionRenderer creates a connection renderer
func NewConnectionRenderer() *ConnectionRenderer {
	return &ConnectionRenderer{}
}

// Render implements SystemRenderer
func (r *ConnectionRenderer) Render(ctx render.RenderContext, s render.Surface) {
	ps := ctx.Scene.Particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := vmath.Distance(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y)
			alpha := ConnectionAlpha(d)
			if alpha <= 0 {
				continue
			}
			s.Line(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y,
				parameter.ConnectionWidth, nil, render.With(ctx.Palette.Connection, alpha))
		}
	}
}

// ConnectionAlpha fades linearly from ConnectionMaxAlpha at distance 0 to nothing at ConnectionDistance
func ConnectionAlpha(d float64) float64 {
	if d >= parameter.ConnectionDistance {
		return 0
	}
	return (1 - d/parameter.ConnectionDistance) * parameter.ConnectionMaxAlpha
}
