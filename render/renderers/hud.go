package renderers

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
)

// HUDRenderer draws the metrics panel in the top-right corner and the legend in the bottom-right
type HUDRenderer struct {
	visible atomic.Bool
}

// NewHUDRenderer creates a visible HUD renderer
func NewHUDRenderer() *HUDRenderer {
	r := &HUDRenderer{}
	r.visible.Store(true)
	return r
}

// IsVisible implements VisibilityToggle
func (r *HUDRenderer) IsVisible() bool {
	return r.visible.Load()
}

// SetVisible shows or hides the HUD
func (r *HUDRenderer) SetVisible(v bool) {
	r.visible.Store(v)
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, s render.Surface) {
	r.renderPanel(ctx, s)
	r.renderLegend(ctx, s)
}

func (r *HUDRenderer) renderPanel(ctx render.RenderContext, s render.Surface) {
	pal := ctx.Palette
	w := ctx.Pick(parameter.PanelWidthDesktop, parameter.PanelWidthMobile)
	h := ctx.Pick(parameter.PanelHeightDesktop, parameter.PanelHeightMobile)
	lineHeight := ctx.Pick(parameter.PanelLineHeightDesktop, parameter.PanelLineHeightMobile)
	size := ctx.Pick(parameter.TextSizeDesktop, parameter.TextSizeMobile)

	x := ctx.Width - w - parameter.PanelMargin
	y := parameter.PanelMargin

	s.FillRoundedRect(x, y, w, h, parameter.PanelCornerRadius, render.With(pal.PanelBackground, parameter.PanelBackgroundAlpha))
	s.StrokeRoundedRect(x, y, w, h, parameter.PanelCornerRadius, 1, render.With(pal.PanelBorder, 1))

	lines := MetricLines(ctx.Engine.Metrics)
	for i, line := range lines {
		col := pal.PanelText
		if i == 0 {
			col = pal.PanelAccent
		}
		s.Text(x+parameter.PanelPadding, y+parameter.PanelPadding+float64(i)*lineHeight, line, size, render.With(col, 1))
	}
}

func (r *HUDRenderer) renderLegend(ctx render.RenderContext, s render.Surface) {
	pal := ctx.Palette
	size := ctx.Pick(parameter.TextSizeDesktop, parameter.TextSizeMobile)

	entries := [2]struct {
		label string
		col   render.Color
	}{
		{parameter.LegendDataLabel, render.With(pal.DataPacket, 1)},
		{parameter.LegendGradientLabel, render.With(pal.GradientPacket, 1)},
	}

	width := 0.0
	for _, e := range entries {
		width = max(width, textWidth(e.label, size))
	}
	width += parameter.LegendDotRadius*2 + parameter.LegendTextGap

	x := ctx.Width - width - parameter.PanelMargin
	y := ctx.Height - parameter.PanelMargin - float64(len(entries))*parameter.LegendRowHeight
	for i, e := range entries {
		cy := y + float64(i)*parameter.LegendRowHeight + parameter.LegendRowHeight/2
		s.FillCircle(x+parameter.LegendDotRadius, cy, parameter.LegendDotRadius, e.col)
		s.Text(x+parameter.LegendDotRadius*2+parameter.LegendTextGap, cy-size/2, e.label, size, render.With(pal.PanelText, 1))
	}
}

// MetricLines formats the three panel lines
func MetricLines(m engine.Metrics) [3]string {
	return [3]string{
		fmt.Sprintf("Epoch: %d", m.Epoch),
		fmt.Sprintf("Loss: %.4f", m.Loss),
		fmt.Sprintf("Accuracy: %.1f%%", m.Accuracy*100),
	}
}
