package sim

import "math/rand"

// Rand supplies uniform floats in [min, max). It is only consulted while
// laying out the initial grid.
type Rand interface {
	Uniform(min, max float32) float32
}

// SeededRand is a Rand backed by a math/rand source, deterministic per seed.
type SeededRand struct {
	r *rand.Rand
}

// NewSeededRand returns a Rand whose sequence is fixed by seed.
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a float in [min, max).
func (s *SeededRand) Uniform(min, max float32) float32 {
	return min + s.r.Float32()*(max-min)
}
