package renderers

import (
	"math"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
)

// LinkRenderer draws the fully connected edges between neuron layers and the dashed
// node-to-network links
type LinkRenderer struct{}

// NewLinkRenderer creates a link renderer
func NewLinkRenderer() *LinkRenderer {
	return &LinkRenderer{}
}

// Render implements SystemRenderer
func (r *LinkRenderer) Render(ctx render.RenderContext, s render.Surface) {
	layers := ctx.Scene.Layers
	for li := 0; li+1 < len(layers); li++ {
		c := render.With(ctx.Palette.NeuronLink, LinkAlpha(ctx.ElapsedMs, li))
		for _, a := range layers[li] {
			for _, b := range layers[li+1] {
				s.Line(a.X, a.Y, b.X, b.Y, parameter.NeuronLinkWidth, nil, c)
			}
		}
	}

	r.renderNodeLinks(ctx, s)
}

// renderNodeLinks joins workers to the input layer and the server to the output layer
func (r *LinkRenderer) renderNodeLinks(ctx render.RenderContext, s render.Surface) {
	layers := ctx.Scene.Layers
	if len(layers) == 0 {
		return
	}
	input, inOK := middleNeuron(layers[0])
	output, outOK := middleNeuron(layers[len(layers)-1])
	c := render.With(ctx.Palette.NodeLink, parameter.NodeLinkAlpha)

	for _, n := range ctx.Scene.Nodes {
		target, ok := input, inOK
		if n.IsServer {
			target, ok = output, outOK
		}
		if !ok {
			continue
		}
		s.Line(n.X, n.Y, target.X, target.Y, parameter.NodeLinkWidth, parameter.NodeLinkDash, c)
	}
}

// LinkAlpha oscillates slowly around LinkAlphaBase, offset per layer
func LinkAlpha(elapsedMs float64, layer int) float64 {
	return parameter.LinkAlphaBase +
		parameter.LinkAlphaSwing*math.Sin(elapsedMs*parameter.LinkOscillationRate+float64(layer))
}

func middleNeuron(layer []engine.Neuron) (engine.Neuron, bool) {
	if len(layer) == 0 {
		return engine.Neuron{}, false
	}
	return layer[len(layer)/2], true
}
