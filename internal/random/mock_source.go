package random

import (
	"fmt"
	"sync"
)

// MockSource implements Source for testing with predetermined results
type MockSource struct {
	mu        sync.Mutex
	values    []int
	valueIdx  int
	shuffled  bool
	noShuffle bool
}

// NewMockSource creates a new mock random source
func NewMockSource() *MockSource {
	return &MockSource{
		values: []int{},
	}
}

// SetNextIntn queues the next Intn result
func (m *MockSource) SetNextIntn(v int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, v)
}

// SetIntns replaces the queued Intn results
func (m *MockSource) SetIntns(values []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = values
	m.valueIdx = 0
}

// DisableShuffle makes Shuffle a no-op so ordering stays predictable
func (m *MockSource) DisableShuffle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.noShuffle = true
}

// ShuffleCalled reports whether Shuffle was invoked
func (m *MockSource) ShuffleCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shuffled
}

// Reset clears queued values and call tracking
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = []int{}
	m.valueIdx = 0
	m.shuffled = false
	m.noShuffle = false
}

// Intn returns the next predetermined value, clamped to [0, n)
func (m *MockSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("Intn called with n=%d", n))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valueIdx >= len(m.values) {
		return 0
	}

	v := m.values[m.valueIdx]
	m.valueIdx++
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Shuffle reverses the elements unless disabled, so tests get a
// deterministic reordering that differs from the input
func (m *MockSource) Shuffle(n int, swap func(i, j int)) {
	m.mu.Lock()
	noShuffle := m.noShuffle
	m.shuffled = true
	m.mu.Unlock()

	if noShuffle {
		return
	}

	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
