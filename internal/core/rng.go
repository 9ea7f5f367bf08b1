package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: newSource(seed)}
}

func newSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Reseed restarts the sequence as if the RNG had been created with seed.
func (r *RNG) Reseed(seed int64) {
	r.r = newSource(seed)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
