package renderers

import (
	"math"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
)

// NodeRenderer draws compute nodes: pulsing glow, ring, icon and label
type NodeRenderer struct{}

// NewNodeRenderer creates a compute node renderer
func NewNodeRenderer() *NodeRenderer {
	return &NodeRenderer{}
}

// Render implements SystemRenderer
func (r *NodeRenderer) Render(ctx render.RenderContext, s render.Surface) {
	pal := ctx.Palette
	textSize := ctx.Pick(parameter.TextSizeDesktop, parameter.TextSizeMobile)

	for _, n := range ctx.Scene.Nodes {
		base := pal.NodeWorker
		if n.IsServer {
			base = pal.NodeServer
		}

		glow := NodePulse(ctx.ElapsedMs, n.Phase)
		s.RadialGlow(n.X, n.Y, n.Radius*parameter.NodeGlowScale, []render.GradientStop{
			{Offset: 0, Color: render.With(base, glow)},
			{Offset: 1, Color: render.Transparent},
		})

		s.FillCircle(n.X, n.Y, n.Radius, render.With(base, parameter.NodeFillAlpha))
		s.StrokeCircle(n.X, n.Y, n.Radius, parameter.NodeRingWidth, render.With(base, parameter.NodeRingAlpha))

		if n.IsServer {
			drawServerIcon(s, n, pal.NodeIcon)
		} else {
			drawWorkerIcon(s, n, pal.NodeIcon)
		}

		// Label is centered horizontally under the ring
		w := textWidth(n.Label, textSize)
		s.Text(n.X-w/2, n.Y+n.Radius+parameter.NodeLabelOffset, n.Label, textSize, render.With(pal.NodeLabel, 1))
	}
}

// NodePulse returns the glow alpha of a node at time t
func NodePulse(elapsedMs, phase float64) float64 {
	return parameter.NodeGlowAlphaBase +
		parameter.NodeGlowAlphaSwing*math.Sin(elapsedMs*parameter.NodePulseRate+phase)
}

func drawServerIcon(s render.Surface, n engine.ComputeNode, col visual.RGB) {
	w := n.Radius * parameter.ServerBarWidth
	h := n.Radius * parameter.ServerBarHeight
	gap := n.Radius * parameter.ServerBarGap
	total := float64(parameter.ServerBarCount)*h + float64(parameter.ServerBarCount-1)*gap
	y := n.Y - total/2
	c := render.With(col, 1)
	for range parameter.ServerBarCount {
		s.FillRoundedRect(n.X-w/2, y, w, h, h/2, c)
		y += h + gap
	}
}

func drawWorkerIcon(s render.Surface, n engine.ComputeNode, col visual.RGB) {
	size := n.Radius * parameter.WorkerCellSize
	gap := n.Radius * parameter.WorkerCellGap
	x0 := n.X - size - gap/2
	y0 := n.Y - size - gap/2
	c := render.With(col, 1)
	for row := range 2 {
		for colIdx := range 2 {
			s.FillRect(x0+float64(colIdx)*(size+gap), y0+float64(row)*(size+gap), size, size, c)
		}
	}
}

// textWidth estimates rendered width for a fixed-pitch face where glyphs are ~0.6em wide
func textWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}
