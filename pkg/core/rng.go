package core

import "math/rand/v2"

// Source supplies uniformly distributed values in [0, 1). *rand.Rand and
// *RNG both satisfy it.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillAges sets each cell to 1 with probability density and to 0 otherwise,
// consuming one draw per cell in order. It returns the number of live cells.
func FillAges(src Source, buf []uint8, density float64) int {
	alive := 0
	for i := range buf {
		if src.Float64() < density {
			buf[i] = 1
			alive++
			continue
		}
		buf[i] = 0
	}
	return alive
}
