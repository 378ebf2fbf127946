package engine

import (
	"time"

	"github.com/lixenwraith/netviz/parameter"
)

// updateMetrics drifts the cosmetic metrics at most once per interval
// Returns true when an epoch was advanced
func (e *Engine) updateMetrics(now time.Time) bool {
	m := &e.Metrics
	if now.Sub(m.LastUpdate) < e.cfg.MetricsInterval() {
		return false
	}

	decay := parameter.LossDecayMin + e.rng.Float64()*parameter.LossDecaySpread
	loss := max(m.Loss*decay, e.cfg.LossFloor)
	// Never climb back up when the floor was configured above the current loss
	m.Loss = min(loss, m.Loss)

	gap := e.cfg.AccuracyCeiling - m.Accuracy
	if gap > 0 {
		m.Accuracy += gap * e.rng.Float64() * parameter.AccuracyGain
	}

	m.Epoch++
	m.LastUpdate = now

	e.log.Debug("epoch",
		"epoch", m.Epoch,
		"loss", m.Loss,
		"accuracy", m.Accuracy,
	)

	if e.hooks.OnEpoch != nil {
		e.hooks.OnEpoch(*m)
	}
	return true
}
