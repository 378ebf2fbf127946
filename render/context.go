package render

import (
	"time"

	"github.com/lixenwraith/netviz/engine"
	"github.com/lixenwraith/netviz/parameter/visual"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Engine  *engine.Engine
	Scene   *engine.Scene
	Palette *visual.Palette

	// Frame timestamp and engine time in milliseconds, the unit of all phase rates
	Time      time.Time
	ElapsedMs float64

	Width  float64
	Height float64
	Mobile bool
}

// NewRenderContext snapshots the engine for one frame
func NewRenderContext(e *engine.Engine, palette *visual.Palette, ts time.Time) RenderContext {
	return RenderContext{
		Engine:    e,
		Scene:     &e.Scene,
		Palette:   palette,
		Time:      ts,
		ElapsedMs: e.ElapsedMs(),
		Width:     e.Scene.Width,
		Height:    e.Scene.Height,
		Mobile:    e.Scene.Class == engine.SizeMobile,
	}
}

// Pick returns desktop or mobile depending on the size class
func (rc *RenderContext) Pick(desktop, mobile float64) float64 {
	if rc.Mobile {
		return mobile
	}
	return desktop
}
