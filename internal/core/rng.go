package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBernoulli sets each cell of g alive independently with the given
// probability. Probabilities outside [0,1] are clamped to the nearest bound.
func FillBernoulli(r *rand.Rand, g *BitGrid, probability float64) {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			g.Set(row, col, r.Float64() < probability)
		}
	}
}
