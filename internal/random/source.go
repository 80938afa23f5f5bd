package random

//go:generate mockgen -destination=mock/mock_source.go -package=mockrandom -source=source.go

// Source provides the randomness used for question rotation and the
// spinning-wheel player pick
// This allows us to inject deterministic implementations for testing
type Source interface {
	// Intn returns a non-negative pseudo-random int in [0, n)
	// It panics if n <= 0
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}
