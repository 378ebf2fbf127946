package status

import (
	"strconv"
	"sync/atomic"
)

// Well-known metric names written by the frame loop
const (
	Frames          = "loop.frames"
	FPS             = "loop.fps"
	Paused          = "loop.paused"
	Particles       = "scene.particles"
	Neurons         = "scene.neurons"
	DataPackets     = "packets.data"
	GradientPackets = "packets.gradient"
	Delivered       = "packets.delivered"
	Epoch           = "metrics.epoch"
)

// Registry holds named counters and gauges
// Writers cache the returned pointers; reads and writes are lock-free afterwards
type Registry struct {
	counters *metricMap[atomic.Int64]
	gauges   *metricMap[Gauge]
}

// Entry is one formatted metric for display
type Entry struct {
	Name  string
	Value string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: newMetricMap[atomic.Int64](),
		gauges:   newMetricMap[Gauge](),
	}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the gauge for name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return r.gauges.get(name)
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.counters.count() + r.gauges.count()
}

// Snapshot returns counters then gauges, each group sorted by name
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Len())
	r.counters.each(func(name string, c *atomic.Int64) {
		out = append(out, Entry{Name: name, Value: strconv.FormatInt(c.Load(), 10)})
	})
	r.gauges.each(func(name string, g *Gauge) {
		out = append(out, Entry{Name: name, Value: strconv.FormatFloat(g.Get(), 'f', 1, 64)})
	})
	return out
}
