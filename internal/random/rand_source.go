package random

import "math/rand"

// randSource implements Source using math/rand
// Question selection does not need cryptographic randomness
type randSource struct{}

// NewRandSource creates a new pseudo-random source
func NewRandSource() Source {
	return &randSource{}
}

// Intn implements Source.Intn
func (s *randSource) Intn(n int) int {
	return rand.Intn(n)
}

// Shuffle implements Source.Shuffle
func (s *randSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
