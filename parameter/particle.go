package parameter

// Ambient particle field
const (
	// ParticleArea is the surface area (px²) allotted to one particle
	ParticleArea = 15000.0

	// ParticleMaxCount caps the particle count regardless of surface area
	ParticleMaxCount = 80

	// ParticleInitialSpeed scales the initial random velocity per axis: (rand-0.5)*ParticleInitialSpeed
	ParticleInitialSpeed = 0.5

	// ParticleRadiusMin/Spread give radius in [1, 3)
	ParticleRadiusMin    = 1.0
	ParticleRadiusSpread = 2.0

	// ParticleOpacityMin/Spread give opacity in [0.3, 0.8)
	ParticleOpacityMin    = 0.3
	ParticleOpacitySpread = 0.5

	// ParticleFriction is the per-frame velocity multiplier
	ParticleFriction = 0.99

	// ParticleMinSpeed below which random jitter is injected
	ParticleMinSpeed = 0.2

	// ParticleJitter scales the stall-recovery impulse per axis: (rand-0.5)*ParticleJitter
	ParticleJitter = 0.1

	// ParticleGlowScale is glow radius as a multiple of particle radius
	ParticleGlowScale = 3.0
)

// Pointer interaction
const (
	// PointerRadius is the repulsion radius around the pointer (px)
	PointerRadius = 150.0

	// PointerRepelStrength scales the impulse (radius-distance)/radius
	PointerRepelStrength = 0.02
)

// Particle connections
const (
	// ConnectionDistance is the max pairwise distance that draws a line (px)
	ConnectionDistance = 150.0

	// ConnectionMaxAlpha is the line alpha at zero distance
	ConnectionMaxAlpha = 0.15

	// ConnectionWidth is the stroke width of particle connections
	ConnectionWidth = 1.0
)
