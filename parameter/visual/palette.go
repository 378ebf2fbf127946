package visual

// RGB is an opaque 24-bit color; alpha is applied at draw time
type RGB struct {
	R, G, B uint8
}

// Palette holds every color the renderer draws with
type Palette struct {
	Background RGB

	Particle      RGB // glow inner stop
	ParticleOuter RGB // glow middle stop
	ParticleCore  RGB
	Connection    RGB

	NodeServer RGB
	NodeWorker RGB
	NodeIcon   RGB
	NodeLabel  RGB

	NeuronLow  RGB // activation 0
	NeuronHigh RGB // activation 1
	NeuronLink RGB
	NodeLink   RGB

	DataPacket     RGB
	GradientPacket RGB

	PanelBackground RGB
	PanelBorder     RGB
	PanelText       RGB
	PanelAccent     RGB
}

// Dark is the default palette, indigo on near-black
var Dark = Palette{
	Background: RGB{11, 11, 22},

	Particle:      RGB{129, 140, 248},
	ParticleOuter: RGB{99, 102, 241},
	ParticleCore:  RGB{255, 255, 255},
	Connection:    RGB{99, 102, 241},

	NodeServer: RGB{168, 85, 247},
	NodeWorker: RGB{99, 102, 241},
	NodeIcon:   RGB{224, 231, 255},
	NodeLabel:  RGB{199, 210, 254},

	NeuronLow:  RGB{67, 56, 202},
	NeuronHigh: RGB{236, 72, 153},
	NeuronLink: RGB{129, 140, 248},
	NodeLink:   RGB{168, 85, 247},

	DataPacket:     RGB{34, 211, 238},
	GradientPacket: RGB{251, 191, 36},

	PanelBackground: RGB{17, 17, 34},
	PanelBorder:     RGB{99, 102, 241},
	PanelText:       RGB{199, 210, 254},
	PanelAccent:     RGB{34, 211, 238},
}

// Light mirrors Dark for a pale background
var Light = Palette{
	Background: RGB{248, 250, 252},

	Particle:      RGB{79, 70, 229},
	ParticleOuter: RGB{99, 102, 241},
	ParticleCore:  RGB{49, 46, 129},
	Connection:    RGB{79, 70, 229},

	NodeServer: RGB{147, 51, 234},
	NodeWorker: RGB{79, 70, 229},
	NodeIcon:   RGB{255, 255, 255},
	NodeLabel:  RGB{49, 46, 129},

	NeuronLow:  RGB{165, 180, 252},
	NeuronHigh: RGB{219, 39, 119},
	NeuronLink: RGB{99, 102, 241},
	NodeLink:   RGB{147, 51, 234},

	DataPacket:     RGB{8, 145, 178},
	GradientPacket: RGB{217, 119, 6},

	PanelBackground: RGB{238, 242, 255},
	PanelBorder:     RGB{129, 140, 248},
	PanelText:       RGB{49, 46, 129},
	PanelAccent:     RGB{8, 145, 178},
}
