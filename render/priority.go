package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityConnections RenderPriority = iota
	PriorityLinks
	PriorityParticles
	PriorityNodes
	PriorityNeurons
	PriorityPackets
	PriorityHUD
	PriorityDebug
)
