package renderers

import (
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
)

// NeuronRenderer draws neurons with activation-colored glow and fill
type NeuronRenderer struct{}

// NewNeuronRenderer creates a neuron renderer
func NewNeuronRenderer() *NeuronRenderer {
	return &NeuronRenderer{}
}

// Render implements SystemRenderer
func (r *NeuronRenderer) Render(ctx render.RenderContext, s render.Surface) {
	pal := ctx.Palette
	for _, layer := range ctx.Scene.Layers {
		for _, n := range layer {
			col := render.Mix(pal.NeuronLow, pal.NeuronHigh, n.Activation)

			s.RadialGlow(n.X, n.Y, n.Radius*parameter.NeuronGlowScale, []render.GradientStop{
				{Offset: 0, Color: render.With(col, n.Activation*parameter.NeuronGlowMaxAlpha)},
				{Offset: 1, Color: render.Transparent},
			})

			alpha := parameter.NeuronFillAlphaMin + (1-parameter.NeuronFillAlphaMin)*n.Activation
			s.FillCircle(n.X, n.Y, n.Radius, render.With(col, alpha))
		}
	}
}
