package engine

import "time"

// TimeProvider abstracts the frame timestamp source
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns wall time with a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns time.Now
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
