package parameter

// MobileBreakpoint is the surface width below which the mobile layout is used
const MobileBreakpoint = 768.0

// NodeSlot places one compute node as fractions of surface width and height
type NodeSlot struct {
	FX, FY float64
	Label  string
	Server bool
}

// Compute node layouts, parameter server first
var (
	DesktopNodes = []NodeSlot{
		{FX: 0.16, FY: 0.24, Label: "PS", Server: true},
		{FX: 0.07, FY: 0.58, Label: "W1"},
		{FX: 0.20, FY: 0.74, Label: "W2"},
		{FX: 0.33, FY: 0.52, Label: "W3"},
	}

	MobileNodes = []NodeSlot{
		{FX: 0.50, FY: 0.12, Label: "PS", Server: true},
		{FX: 0.22, FY: 0.32, Label: "W1"},
		{FX: 0.78, FY: 0.32, Label: "W2"},
	}
)

// Compute node geometry
const (
	NodeRadiusDesktop = 22.0
	NodeRadiusMobile  = 16.0

	// NodePulseRate is the glow pulse angular rate per millisecond
	NodePulseRate = 0.003

	// NodePhaseStep is the pulse phase offset between consecutive nodes
	NodePhaseStep = 1.3
)

// Neuron layer layouts, input layer first
var (
	DesktopLayerSizes = []int{4, 6, 6, 3}
	MobileLayerSizes  = []int{3, 4, 4, 2}
)

// Neuron grid geometry
const (
	// Horizontal distance between layers (px)
	LayerSpacingDesktop = 110.0
	LayerSpacingMobile  = 70.0

	// Vertical distance between neurons of one layer (px)
	NeuronSpacingDesktop = 48.0
	NeuronSpacingMobile  = 32.0

	NeuronRadiusDesktop = 7.0
	NeuronRadiusMobile  = 5.0

	// NetworkOriginXDesktop is the first layer X as a fraction of width; mobile centers the grid
	NetworkOriginXDesktop = 0.55

	// Layer vertical centre as a fraction of height
	NetworkCenterYDesktop = 0.50
	NetworkCenterYMobile  = 0.68
)

// Neuron activation wave
const (
	// NeuronPhaseRate is the activation angular rate per millisecond
	NeuronPhaseRate = 0.002

	// NeuronLayerPhase and NeuronIndexPhase offset the wave per layer and per neuron
	NeuronLayerPhase = 0.8
	NeuronIndexPhase = 0.5

	// LinkOscillationRate drives the slow opacity swing of layer connections (per ms)
	LinkOscillationRate = 0.001

	// LinkAlphaBase/Swing give link alpha in [base-swing, base+swing]
	LinkAlphaBase  = 0.12
	LinkAlphaSwing = 0.06
)

// Compute node drawing
const (
	// NodeGlowScale is the glow radius as a multiple of the node radius
	NodeGlowScale = 2.2

	// Glow alpha pulses between base-swing and base+swing
	NodeGlowAlphaBase  = 0.22
	NodeGlowAlphaSwing = 0.12

	NodeFillAlpha = 0.18
	NodeRingWidth = 2.0
	NodeRingAlpha = 0.9

	// Server icon: three stacked bars
	ServerBarCount  = 3
	ServerBarWidth  = 0.9  // of radius
	ServerBarHeight = 0.18 // of radius
	ServerBarGap    = 0.14 // of radius

	// Worker icon: 2x2 grid of squares
	WorkerCellSize = 0.32 // of radius
	WorkerCellGap  = 0.12 // of radius

	// NodeLabelOffset is the gap between the ring and the label
	NodeLabelOffset = 6.0
)

// Neuron drawing
const (
	NeuronGlowScale    = 2.5
	NeuronGlowMaxAlpha = 0.5
	NeuronFillAlphaMin = 0.55
	NeuronLinkWidth    = 1.0

	NodeLinkAlpha = 0.2
	NodeLinkWidth = 1.0
)
