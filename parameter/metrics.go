package parameter

import "time"

// Decorative training metrics
const (
	// MetricsInterval is the minimum wall time between metric updates
	MetricsInterval = 3000 * time.Millisecond

	InitialEpoch    = 1
	InitialLoss     = 2.302
	InitialAccuracy = 0.12

	// Loss is multiplied by a factor in [LossDecayMin, LossDecayMin+LossDecaySpread]
	LossDecayMin    = 0.85
	LossDecaySpread = 0.10

	// LossFloor is the lowest reachable loss
	LossFloor = 0.01

	// AccuracyCeiling is approached but never reached
	AccuracyCeiling = 0.99

	// AccuracyGain is the max fraction of the remaining gap closed per update
	AccuracyGain = 0.15
)
