package renderers

import (
	"math"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/parameter/visual"
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/vmath"
)

// PacketRenderer draws data and gradient packets with fading trails
type PacketRenderer struct{}

// NewPacketRenderer creates a packet renderer
func NewPacketRenderer() *PacketRenderer {
	return &PacketRenderer{}
}

// Render implements SystemRenderer
func (r *PacketRenderer) Render(ctx render.RenderContext, s render.Surface) {
	head := ctx.Pick(parameter.PacketHeadRadiusDesktop, parameter.PacketHeadRadiusMobile)
	for _, p := range ctx.Scene.DataPackets {
		drawPacket(s, p, head, ctx.Palette.DataPacket)
	}
	for _, p := range ctx.Scene.GradientPackets {
		drawPacket(s, p, head, ctx.Palette.GradientPacket)
	}
}

func drawPacket(s render.Surface, p engine.Packet, headRadius float64, col visual.RGB) {
	s.RadialGlow(p.HeadX, p.HeadY, headRadius*parameter.PacketGlowScale, []render.GradientStop{
		{Offset: 0, Color: render.With(col, 0.6)},
		{Offset: 1, Color: render.Transparent},
	})

	// Oldest first so the head ends on top
	for k := parameter.PacketTrailLength - 1; k >= 0; k-- {
		x, y, radius, alpha, ok := TrailPoint(p, k, headRadius)
		if !ok {
			continue
		}
		s.FillCircle(x, y, radius, render.With(col, alpha))
	}
}

// TrailPoint returns the k-th trail circle behind a packet head, k=0 being the head itself
// ok is false when the circle would sit before the packet source
func TrailPoint(p engine.Packet, k int, headRadius float64) (x, y, radius, alpha float64, ok bool) {
	t := p.Progress - float64(k)*parameter.PacketTrailStep
	if t < 0 {
		return 0, 0, 0, 0, false
	}
	x, y = vmath.EasePoint(p.SrcX, p.SrcY, p.DstX, p.DstY, t)
	radius = headRadius * math.Pow(parameter.PacketTrailShrink, float64(k))
	alpha = math.Pow(parameter.PacketTrailFade, float64(k))
	return x, y, radius, alpha, true
}
