package renderers

import (
	"sync/atomic"

	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/status"
)

// DebugRenderer overlays the status registry in the top-left corner, hidden by default
type DebugRenderer struct {
	registry *status.Registry
	visible  atomic.Bool
}

// NewDebugRenderer creates a hidden debug overlay reading reg
func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{registry: reg}
}

// IsVisible implements VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.registry != nil && r.visible.Load()
}

// SetVisible shows or hides the overlay
func (r *DebugRenderer) SetVisible(v bool) {
	r.visible.Store(v)
}

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	for {
		old := r.visible.Load()
		if r.visible.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, s render.Surface) {
	entries := r.registry.Snapshot()
	if len(entries) == 0 {
		return
	}

	size := parameter.DebugTextSize
	width := 0.0
	for _, e := range entries {
		width = max(width, textWidth(e.Name+" "+e.Value, size))
	}
	x := parameter.PanelMargin
	y := parameter.PanelMargin
	w := width + parameter.PanelPadding*2
	h := float64(len(entries))*parameter.DebugLineHeight + parameter.PanelPadding*2

	s.FillRect(x, y, w, h, render.With(ctx.Palette.PanelBackground, parameter.DebugPanelAlpha))
	for i, e := range entries {
		s.Text(x+parameter.PanelPadding, y+parameter.PanelPadding+float64(i)*parameter.DebugLineHeight,
			e.Name+" "+e.Value, size, render.With(ctx.Palette.PanelText, 1))
	}
}
