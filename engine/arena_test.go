package engine

import (
	"testing"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
)

func TestArenaFitSlidesBeforeShrinking(t *testing.T) {
	a := NewArena(20, 10, 40, 12)
	// 20+40+16 = 76 > 70: overflow 6, slack 18, pure slide
	a.Fit(core.NewPoint(70, 40), nil)

	if a.Position.X != 14 || a.Size.X != 40 {
		t.Errorf("Expected position.x 14 and width 40, got %d and %d", a.Position.X, a.Size.X)
	}
	if a.Position.Y != 10 || a.Size.Y != 12 {
		t.Errorf("Expected vertical geometry untouched, got %v", a)
	}
}

func TestArenaFitShrinksAndPullsFood(t *testing.T) {
	a := NewArena(4, 5, 40, 20)
	food := []component.Food{
		component.NewFood(component.EffectNone, core.NewPoint(39, 39)),
		component.NewFood(component.EffectSpeed, core.NewPoint(3, 2)),
	}

	// Horizontal: 4+40+16-50 = 10 over, slack 2, shrink 8 to width 32
	// Vertical: 5+20+2-20 = 7 over, slack 2, shrink 5 to height 15
	a.Fit(core.NewPoint(50, 20), food)

	if a.Size.X != 32 {
		t.Errorf("Expected width 32, got %d", a.Size.X)
	}
	if a.Size.Y != 15 {
		t.Errorf("Expected height 15, got %d", a.Size.Y)
	}
	if a.Position.X != 2 || a.Position.Y != 3 {
		t.Errorf("Expected position floored at (2,3), got %v", a.Position)
	}
	if food[0].Position != core.NewPoint(30, 28) {
		t.Errorf("Expected food pulled to (30,28), got %v", food[0].Position)
	}
	if food[1].Position != core.NewPoint(3, 2) {
		t.Errorf("Expected inner food untouched, got %v", food[1].Position)
	}
}

func TestArenaFitMinimumSize(t *testing.T) {
	a := NewArena(2, 3, 40, 20)
	a.Fit(core.NewPoint(10, 5), nil)

	if a.Size.X != 8 || a.Size.Y != 8 {
		t.Errorf("Expected size floored at 8x8, got %v", a.Size)
	}
}

func TestArenaMoveBySaturates(t *testing.T) {
	a := NewArena(3, 4, 20, 10)
	a.MoveBy(-5, -5)
	if a.Position.X != 2 || a.Position.Y != 3 {
		t.Errorf("Expected (2,3), got (%d,%d)", a.Position.X, a.Position.Y)
	}
	a.MoveBy(1, 2)
	if a.Position.X != 3 || a.Position.Y != 5 {
		t.Errorf("Expected (3,5), got (%d,%d)", a.Position.X, a.Position.Y)
	}
}

func TestArenaResizeBy(t *testing.T) {
	a := NewArena(2, 3, 10, 8)
	food := []component.Food{component.NewFood(component.EffectNone, core.NewPoint(9, 15))}

	a.ResizeBy(-1, -1, food)
	if a.Size.X != 9 || a.Size.Y != 8 {
		t.Errorf("Expected 9x8 (height floored), got %dx%d", a.Size.X, a.Size.Y)
	}
	if food[0].Position.X != 7 || food[0].Position.Y != 14 {
		t.Errorf("Expected food pulled to (7,14), got %v", food[0].Position)
	}

	a.ResizeBy(1, 1, food)
	if a.Size.X != 10 || a.Size.Y != 9 {
		t.Errorf("Expected 10x9, got %dx%d", a.Size.X, a.Size.Y)
	}

	big := NewArena(2, 3, 255, 127)
	big.ResizeBy(1, 1, nil)
	if big.Size.X != 255 || big.Size.Y != 127 {
		t.Errorf("Expected size capped at 255x127, got %dx%d", big.Size.X, big.Size.Y)
	}
}

func TestArenaWorldToScreen(t *testing.T) {
	a := NewArena(2, 3, 10, 5)

	tests := []struct {
		p        core.Point
		col, row int
	}{
		{core.NewPoint(0, 0), 3, 4},
		{core.NewPoint(0, 1), 3, 4},
		{core.NewPoint(4, 2), 7, 5},
		{core.NewPoint(9, 9), 12, 8},
	}
	for _, tt := range tests {
		col, row := a.WorldToScreen(tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("WorldToScreen(%v): expected (%d,%d), got (%d,%d)", tt.p, tt.col, tt.row, col, row)
		}
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 300; i++ {
		q.Push(Event{Type: EventEat, Snake: i})
	}
	if q.Len() != 256 {
		t.Fatalf("Expected 256 pending events, got %d", q.Len())
	}
	events := q.Consume(nil)
	if events[0].Snake != 44 || events[len(events)-1].Snake != 299 {
		t.Errorf("Expected events 44..299, got %d..%d", events[0].Snake, events[len(events)-1].Snake)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
}

func TestNewWorldPopulation(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	w := NewWorld(WorldConfig{Agents: 4, Seed: 9, Arena: NewArena(2, 3, 20, 10), Clock: mock})

	if len(w.Snakes) != 4 {
		t.Fatalf("Expected 4 snakes, got %d", len(w.Snakes))
	}
	if w.Player().Strategy != component.StrategyPlayer {
		t.Errorf("Expected slot 0 to be the player, got %v", w.Player().Strategy)
	}
	for i, s := range w.Snakes[1:] {
		if s.Strategy == component.StrategyPlayer {
			t.Errorf("Expected agent %d to be AI driven", i+1)
		}
		if !w.Arena.Contains(s.Head()) {
			t.Errorf("Agent %d spawned outside the arena at %v", i+1, s.Head())
		}
	}
	if len(w.Food) != component.EffectCount {
		t.Fatalf("Expected one food per effect, got %d", len(w.Food))
	}
	for i, f := range w.Food {
		if f.Effect != component.Effect(i) {
			t.Errorf("Expected food %d to carry effect %v, got %v", i, component.Effect(i), f.Effect)
		}
	}
}
