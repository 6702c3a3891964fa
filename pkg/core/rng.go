package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Sample returns k distinct indices drawn from [0, n) in draw order. It returns
// nil when k is outside [0, n].
func (r *RNG) Sample(n, k int) []int {
	if k < 0 || k > n {
		return nil
	}
	return r.r.Perm(n)[:k]
}

// FillBinary fills the grid with random Live/Dead cells.
func (r *RNG) FillBinary(g *Grid) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = uint8(r.r.IntN(2))
	}
}
