package engine

import "time"

// FrameID identifies one requested frame callback
type FrameID uint64

// FrameScheduler invokes a callback once on the next display refresh
type FrameScheduler interface {
	RequestFrame(fn func(ts time.Time)) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func(time.Time)
}

// ManualScheduler queues frame requests until the host calls Fire on its refresh signal
// Not safe for concurrent use; hosts fire from the goroutine that owns the engine
type ManualScheduler struct {
	lastID  FrameID
	pending []frameRequest
}

// NewManualScheduler creates an empty scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues fn for the next Fire
func (s *ManualScheduler) RequestFrame(fn func(ts time.Time)) FrameID {
	s.lastID++
	s.pending = append(s.pending, frameRequest{id: s.lastID, fn: fn})
	return s.lastID
}

// CancelFrame drops a queued request, unknown ids are ignored
func (s *ManualScheduler) CancelFrame(id FrameID) {
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued requests
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Fire runs the requests queued before the call with timestamp ts
// Requests made by the callbacks wait for the next Fire; returns the number run
func (s *ManualScheduler) Fire(ts time.Time) int {
	batch := s.pending
	s.pending = nil
	for _, r := range batch {
		r.fn(ts)
	}
	return len(batch)
}
