package engine

import (
	"math"

	"github.com/lixenwraith/netviz/parameter"
)

// Classify returns the size class for a surface width
func (e *Engine) Classify(width float64) SizeClass {
	if width < e.cfg.MobileBreakpoint {
		return SizeMobile
	}
	return SizeDesktop
}

// Build replaces particles, nodes and neuron layers for the given surface size
// In-flight packets are discarded; metrics and pointer survive
func (e *Engine) Build(width, height float64) {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	class := e.Classify(width)

	e.Scene = Scene{
		Width:     width,
		Height:    height,
		Class:     class,
		Particles: e.buildParticles(width, height),
		Nodes:     buildNodes(width, height, class),
		Layers:    e.buildLayers(width, height, class),
	}

	e.log.Debug("scene built",
		"width", width,
		"height", height,
		"class", class.String(),
		"particles", len(e.Scene.Particles),
		"nodes", len(e.Scene.Nodes),
		"neurons", e.Scene.NeuronCount(),
	)

	if e.hooks.OnRebuild != nil {
		e.hooks.OnRebuild(width, height, class)
	}
}

// ParticleCount returns the particle count for a surface size
func (e *Engine) ParticleCount(width, height float64) int {
	if e.cfg.ParticleArea <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	n := int(math.Floor(width * height / e.cfg.ParticleArea))
	return min(n, e.cfg.MaxParticles)
}

func (e *Engine) buildParticles(width, height float64) []Particle {
	n := e.ParticleCount(width, height)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:       e.rng.Float64() * width,
			Y:       e.rng.Float64() * height,
			VX:      (e.rng.Float64() - 0.5) * parameter.ParticleInitialSpeed,
			VY:      (e.rng.Float64() - 0.5) * parameter.ParticleInitialSpeed,
			Radius:  e.rng.Float64()*parameter.ParticleRadiusSpread + parameter.ParticleRadiusMin,
			Opacity: e.rng.Float64()*parameter.ParticleOpacitySpread + parameter.ParticleOpacityMin,
		}
	}
	return particles
}

func buildNodes(width, height float64, class SizeClass) []ComputeNode {
	slots := parameter.DesktopNodes
	radius := parameter.NodeRadiusDesktop
	if class == SizeMobile {
		slots = parameter.MobileNodes
		radius = parameter.NodeRadiusMobile
	}

	nodes := make([]ComputeNode, len(slots))
	for i, slot := range slots {
		nodes[i] = ComputeNode{
			X:        slot.FX * width,
			Y:        slot.FY * height,
			Radius:   radius,
			Label:    slot.Label,
			IsServer: slot.Server,
			Phase:    float64(i) * parameter.NodePhaseStep,
			Active:   true,
		}
	}
	return nodes
}

func (e *Engine) buildLayers(width, height float64, class SizeClass) [][]Neuron {
	sizes := e.cfg.DesktopLayers
	layerSpacing := parameter.LayerSpacingDesktop
	neuronSpacing := parameter.NeuronSpacingDesktop
	radius := parameter.NeuronRadiusDesktop
	centerY := height * parameter.NetworkCenterYDesktop
	originX := width * parameter.NetworkOriginXDesktop

	if class == SizeMobile {
		sizes = e.cfg.MobileLayers
		layerSpacing = parameter.LayerSpacingMobile
		neuronSpacing = parameter.NeuronSpacingMobile
		radius = parameter.NeuronRadiusMobile
		centerY = height * parameter.NetworkCenterYMobile
		if len(sizes) > 0 {
			span := float64(len(sizes)-1) * layerSpacing
			originX = (width - span) / 2
		}
	}

	layers := make([][]Neuron, len(sizes))
	for li, n := range sizes {
		if n < 0 {
			n = 0
		}
		x := originX + float64(li)*layerSpacing
		layer := make([]Neuron, n)
		// Offsets are symmetric around centerY; a single neuron sits on it
		mid := float64(n-1) / 2
		for i := range layer {
			layer[i] = Neuron{
				X:      x,
				Y:      centerY + (float64(i)-mid)*neuronSpacing,
				Radius: radius,
				Layer:  li,
				Index:  i,
			}
		}
		layers[li] = layer
	}
	return layers
}
