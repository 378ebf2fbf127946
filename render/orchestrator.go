package render

import (
	"time"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	theme     visual.Theme
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing with the theme's palette
func NewRenderOrchestrator(theme visual.Theme) *RenderOrchestrator {
	return &RenderOrchestrator{
		theme:     theme,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Theme returns the active theme
func (o *RenderOrchestrator) Theme() visual.Theme {
	return o.theme
}

// SetTheme switches the palette from the next frame on
func (o *RenderOrchestrator) SetTheme(t visual.Theme) {
	o.theme = t
}

// RenderFrame executes the render pipeline: clear, then every visible renderer in priority order
func (o *RenderOrchestrator) RenderFrame(s Surface, e *engine.Engine, ts time.Time) {
	palette := o.theme.Palette()
	ctx := NewRenderContext(e, palette, ts)

	s.Clear(palette.Background)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, s)
	}
}
