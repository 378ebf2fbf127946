package renderers

import (
	"github.com/lixenwraith/netviz/render"
	"github.com/lixenwraith/netviz/status"
)

// Toggles exposes the renderers a host can switch at runtime
type Toggles struct {
	HUD   *HUDRenderer
	Debug *DebugRenderer
}

// RegisterDefaults installs the full scene in drawing order
func RegisterDefaults(o *render.RenderOrchestrator, reg *status.Registry) Toggles {
	t := Toggles{
		HUD:   NewHUDRenderer(),
		Debug: NewDebugRenderer(reg),
	}

	o.Register(NewConnectionRenderer(), render.PriorityConnections)
	o.Register(NewLinkRenderer(), render.PriorityLinks)
	o.Register(NewParticleRenderer(), render.PriorityParticles)
	o.Register(NewNodeRenderer(), render.PriorityNodes)
	o.Register(NewNeuronRenderer(), render.PriorityNeurons)
	o.Register(NewPacketRenderer(), render.PriorityPackets)
	o.Register(t.HUD, render.PriorityHUD)
	o.Register(t.Debug, render.PriorityDebug)

	return t
}
