package engine

import (
	"time"

	"github.com/lixenwraith/netviz/parameter"
	"github.com/lixenwraith/netviz/vmath"
)

// Step advances the animation by one frame at absolute time now
// Order: spawn, particles, packets, activations, metrics
func (e *Engine) Step(now time.Time) {
	e.frame++
	e.elapsed = max(now.Sub(e.start), 0)

	e.spawnPackets()
	e.stepParticles()
	e.Scene.DataPackets = e.advancePackets(e.Scene.DataPackets)
	e.Scene.GradientPackets = e.advancePackets(e.Scene.GradientPackets)
	e.updateActivations()
	e.updateMetrics(now)
}

// spawnPackets rolls once per kind; each roll always consumes one random value
func (e *Engine) spawnPackets() {
	if e.rng.Float64() < e.cfg.DataSpawnChance {
		e.spawnData()
	}
	if e.rng.Float64() < e.cfg.GradientSpawnChance {
		e.spawnGradient()
	}
}

// spawnData sends a packet from a random worker to a random input neuron
func (e *Engine) spawnData() {
	s := &e.Scene
	if len(s.Layers) == 0 || len(s.Layers[0]) == 0 {
		return
	}

	workers := make([]int, 0, len(s.Nodes))
	for i := range s.Nodes {
		if !s.Nodes[i].IsServer {
			workers = append(workers, i)
		}
	}
	if len(workers) == 0 {
		return
	}

	src := s.Nodes[workers[e.rng.IntN(len(workers))]]
	dst := s.Layers[0][e.rng.IntN(len(s.Layers[0]))]
	speed := parameter.DataSpeedMin + e.rng.Float64()*parameter.DataSpeedSpread
	s.DataPackets = append(s.DataPackets, newPacket(PacketData, src.X, src.Y, dst.X, dst.Y, speed))
}

// spawnGradient sends a packet from a random output neuron to the parameter server
func (e *Engine) spawnGradient() {
	s := &e.Scene
	server := s.ServerIndex()
	if server < 0 || len(s.Layers) == 0 {
		return
	}
	last := s.Layers[len(s.Layers)-1]
	if len(last) == 0 {
		return
	}

	src := last[e.rng.IntN(len(last))]
	dst := s.Nodes[server]
	speed := parameter.GradientSpeedMin + e.rng.Float64()*parameter.GradientSpeedSpread
	s.GradientPackets = append(s.GradientPackets, newPacket(PacketGradient, src.X, src.Y, dst.X, dst.Y, speed))
}

func newPacket(kind PacketKind, sx, sy, dx, dy, speed float64) Packet {
	return Packet{
		Kind:  kind,
		SrcX:  sx,
		SrcY:  sy,
		DstX:  dx,
		DstY:  dy,
		Speed: speed,
		HeadX: sx,
		HeadY: sy,
	}
}

// EmitPacket appends a packet with an explicit speed to the collection of its kind
func (e *Engine) EmitPacket(kind PacketKind, sx, sy, dx, dy, speed float64) {
	if kind == PacketGradient {
		e.Scene.GradientPackets = append(e.Scene.GradientPackets, newPacket(PacketGradient, sx, sy, dx, dy, speed))
		return
	}
	e.Scene.DataPackets = append(e.Scene.DataPackets, newPacket(PacketData, sx, sy, dx, dy, speed))
}

func (e *Engine) stepParticles() {
	w, h := e.Scene.Width, e.Scene.Height
	ptr := e.Pointer
	cfg := &e.cfg

	for i := range e.Scene.Particles {
		p := &e.Scene.Particles[i]

		if ptr.Present {
			dx := ptr.X - p.X
			dy := ptr.Y - p.Y
			dist := vmath.Magnitude(dx, dy)
			// A particle exactly under the pointer has no direction to flee in
			if dist < ptr.Radius && dist > 0 {
				force := (ptr.Radius - dist) / ptr.Radius
				p.VX -= dx / dist * force * cfg.RepelStrength
				p.VY -= dy / dist * force * cfg.RepelStrength
			}
		}

		p.X = vmath.Wrap(p.X+p.VX, w)
		p.Y = vmath.Wrap(p.Y+p.VY, h)

		p.VX *= cfg.Friction
		p.VY *= cfg.Friction

		if vmath.Magnitude(p.VX, p.VY) < cfg.MinSpeed {
			p.VX += (e.rng.Float64() - 0.5) * cfg.Jitter
			p.VY += (e.rng.Float64() - 0.5) * cfg.Jitter
		}
	}
}

// advancePackets moves every packet forward and drops the ones that arrived, in place
func (e *Engine) advancePackets(list []Packet) []Packet {
	kept := list[:0]
	for _, p := range list {
		if p.Speed > 0 {
			p.Progress += p.Speed
		}
		if p.Progress >= 1-parameter.PacketDoneEpsilon {
			e.delivered[p.Kind]++
			if e.hooks.OnDelivered != nil {
				e.hooks.OnDelivered(p.Kind)
			}
			continue
		}
		p.HeadX, p.HeadY = vmath.EasePoint(p.SrcX, p.SrcY, p.DstX, p.DstY, p.Progress)
		kept = append(kept, p)
	}
	clear(list[len(kept):])
	return kept
}

func (e *Engine) updateActivations() {
	t := e.ElapsedMs() * parameter.NeuronPhaseRate
	for li, layer := range e.Scene.Layers {
		for i := range layer {
			phase := t + float64(li)*parameter.NeuronLayerPhase + float64(i)*parameter.NeuronIndexPhase
			layer[i].Activation = vmath.Wave01(phase)
		}
	}
}
