package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/vmath"
)

// TestEpoch is the fixed start time of test worlds
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates an empty world with an arena of w columns and h physical rows on a mock clock
// Snakes and food are placed by the caller
func NewTestWorld(w, h uint8, seed uint64) (*World, *MockTimeProvider) {
	mock := NewMockTimeProvider(TestEpoch)
	world := &World{
		Arena:   NewArena(2, 3, w, h),
		Rng:     vmath.NewFastRand(seed),
		Clock:   mock,
		Events:  NewEventQueue(),
		Session: uuid.Nil,
	}
	return world, mock
}

// AddTestSnake appends a snake with the given segments (head first) and returns its index
func (w *World) AddTestSnake(strategy component.Strategy, dir core.Direction, segments ...core.Point) int {
	w.Snakes = append(w.Snakes, component.NewSnakeFromBody(strategy.String(), strategy, segments, dir, w.Now()))
	return len(w.Snakes) - 1
}
