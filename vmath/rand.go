package vmath

import (
	"github.com/lixenwraith/serpent/core"
	"golang.org/x/exp/rand"
)

// FastRand is the simulation's seedable generator backed by a PCG source
// Not safe for concurrent use; owned by the game loop
type FastRand struct {
	r *rand.Rand
}

// NewFastRand creates a generator; equal seeds yield equal sequences
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// RandomPoint returns a point inside an arena of size (columns, physical rows)
// The Y range is doubled to cover both half-cells
func (r *FastRand) RandomPoint(size core.Point) core.Point {
	return core.Point{
		X: uint8(r.Intn(int(size.X))),
		Y: uint8(r.Intn(int(size.Y) * 2)),
	}
}

// RandomDirection returns a uniformly chosen heading
func (r *FastRand) RandomDirection() core.Direction {
	return core.DirectionFromIndex(r.Intn(4))
}
