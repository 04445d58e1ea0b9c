package testutil

import "sync"

// Sequence replays a fixed list of values, cycling when exhausted.
// The requested range is ignored. It is thread-safe.
type Sequence struct {
	values []float64
	next   int
	mu     sync.Mutex
}

// NewSequence creates a Sequence over values. It panics if values is empty.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("testutil: empty sequence")
	}
	return &Sequence{values: values}
}

// Uniform returns the next value of the sequence.
func (s *Sequence) Uniform(_, _ float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Calls returns the number of values handed out so far.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
