package renderers

import (
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
)

// ParticleRenderer draws every particle as a radial glow with a solid core
type ParticleRenderer struct {
	stops [3]render.GradientStop // reused across particles
}

// NewParticleRenderer creates a particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, s render.Surface) {
	pal := ctx.Palette
	for _, p := range ctx.Scene.Particles {
		r.stops[0] = render.GradientStop{Offset: 0, Color: render.With(pal.Particle, p.Opacity)}
		r.stops[1] = render.GradientStop{Offset: 0.5, Color: render.With(pal.ParticleOuter, p.Opacity*0.5)}
		r.stops[2] = render.GradientStop{Offset: 1, Color: render.Transparent}
		s.RadialGlow(p.X, p.Y, p.Radius*parameter.ParticleGlowScale, r.stops[:])

		s.FillCircle(p.X, p.Y, p.Radius, render.With(pal.ParticleCore, p.Opacity))
	}
}
