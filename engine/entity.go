package engine

import "time"

// SizeClass selects the layout variant
type SizeClass uint8

const (
	SizeDesktop SizeClass = iota
	SizeMobile
)

func (c SizeClass) String() string {
	if c == SizeMobile {
		return "mobile"
	}
	return "desktop"
}

// Particle is a drifting background dot
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// ComputeNode is a worker or parameter-server icon
type ComputeNode struct {
	X, Y     float64
	Radius   float64
	Label    string
	IsServer bool
	Phase    float64 // pulse offset
	Active   bool
}

// Neuron is one point of the layered network diagram
type Neuron struct {
	X, Y       float64
	Radius     float64
	Layer      int
	Index      int
	Activation float64 // [0,1], recomputed every frame
}

// PacketKind distinguishes the two packet collections
type PacketKind uint8

const (
	PacketData PacketKind = iota
	PacketGradient
)

func (k PacketKind) String() string {
	if k == PacketGradient {
		return "gradient"
	}
	return "data"
}

// Packet travels from source to target while Progress runs from 0 to 1
type Packet struct {
	Kind       PacketKind
	SrcX, SrcY float64
	DstX, DstY float64
	Progress   float64
	Speed      float64 // progress per frame
	HeadX      float64 // eased position, updated by Step
	HeadY      float64
}

// Pointer is the last known pointer position over the surface
type Pointer struct {
	X, Y    float64
	Present bool
	Radius  float64
}

// Metrics are cosmetic training numbers, unrelated to packet traffic
type Metrics struct {
	Epoch      int
	Loss       float64
	Accuracy   float64
	LastUpdate time.Time
}

// Scene holds every entity store for the current surface size
type Scene struct {
	Width, Height float64
	Class         SizeClass

	Particles []Particle
	Nodes     []ComputeNode
	Layers    [][]Neuron

	DataPackets     []Packet
	GradientPackets []Packet
}

// ServerIndex returns the index of the parameter-server node, -1 if absent
func (s *Scene) ServerIndex() int {
	for i := range s.Nodes {
		if s.Nodes[i].IsServer {
			return i
		}
	}
	return -1
}

// NeuronCount returns the number of neurons across all layers
func (s *Scene) NeuronCount() int {
	n := 0
	for _, layer := range s.Layers {
		n += len(layer)
	}
	return n
}

// PacketCount returns in-flight packets of both kinds
func (s *Scene) PacketCount() int {
	return len(s.DataPackets) + len(s.GradientPackets)
}
