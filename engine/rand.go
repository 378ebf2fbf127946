package engine

import "math/rand/v2"

// Rand is the randomness consumed by scene building and stepping
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a seeded PCG source
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewUnseededRand returns a PCG source seeded from the runtime
func NewUnseededRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SequenceRand replays a fixed sequence of values in [0,1), cycling when exhausted
// An empty sequence always yields 0
type SequenceRand struct {
	Values []float64
	pos    int
}

// NewSequenceRand creates a SequenceRand over values
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{Values: values}
}

// Float64 returns the next value of the sequence
func (s *SequenceRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// IntN maps the next value onto [0, n)
func (s *SequenceRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Consumed returns how many values were drawn
func (s *SequenceRand) Consumed() int {
	return s.pos
}
