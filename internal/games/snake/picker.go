package snake

import "math/rand"

// Picker chooses one index out of n candidates.
// Implementations must return a value in [0, n).
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(n int) int

// Pick calls f(n).
func (f PickerFunc) Pick(n int) int {
	return f(n)
}

// RandPicker picks uniformly using a seeded math/rand source,
// so two pickers with the same seed yield the same sequence.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker creates a picker seeded with seed.
func NewRandPicker(seed int64) *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly distributed index in [0, n).
func (p *RandPicker) Pick(n int) int {
	return p.rng.Intn(n)
}
