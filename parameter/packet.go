package parameter

// Packet spawning, per frame probabilities
const (
	DataSpawnChance     = 0.05
	GradientSpawnChance = 0.02
)

// Packet speeds in progress units per frame: min + rand*spread
const (
	DataSpeedMin        = 0.008
	DataSpeedSpread     = 0.008
	GradientSpeedMin    = 0.006
	GradientSpeedSpread = 0.006
)

// PacketDoneEpsilon absorbs float accumulation error when testing progress >= 1
const PacketDoneEpsilon = 1e-9

// Packet trail rendering
const (
	// PacketTrailLength is the number of circles drawn per packet, head included
	PacketTrailLength = 6

	// PacketTrailStep is the progress offset between trail circles
	PacketTrailStep = 0.025

	PacketHeadRadiusDesktop = 4.0
	PacketHeadRadiusMobile  = 3.0

	// PacketTrailShrink is the radius multiplier per trail step
	PacketTrailShrink = 0.8

	// PacketTrailFade is the alpha multiplier per trail step
	PacketTrailFade = 0.7
)

// PacketGlowScale is the head glow radius as a multiple of the head radius
const PacketGlowScale = 3.0
