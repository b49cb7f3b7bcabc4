package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

func TestEatEffects(t *testing.T) {
	tests := []struct {
		name      string
		effect    component.Effect
		delay     uint8
		wantDelay uint8
		wantLen   int
		cannibal  bool
	}{
		{"none", component.EffectNone, 55, 55, 4, false},
		{"speed", component.EffectSpeed, 55, 52, 4, false},
		{"speed saturates", component.EffectSpeed, 2, 0, 4, false},
		{"nourish", component.EffectNourish, 55, 55, 5, false},
		{"cannibal", component.EffectCannibal, 55, 55, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := engine.NewTestWorld(20, 10, 5)
			idx := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(5, 5), pt(4, 5), pt(3, 5))
			s := w.Snakes[idx]
			s.Delay = tt.delay
			w.Food = []component.Food{component.NewFood(tt.effect, pt(5, 5))}

			if !Eat(w, idx) {
				t.Fatal("Expected food under the head to be eaten")
			}
			if s.Delay != tt.wantDelay {
				t.Errorf("Expected delay %d, got %d", tt.wantDelay, s.Delay)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Expected length %d, got %d", tt.wantLen, s.Len())
			}
			if s.IsCannibal(w.Now()) != tt.cannibal {
				t.Errorf("Expected cannibal %v", tt.cannibal)
			}
			if s.Head() != pt(5, 5) || s.Tail() != pt(3, 5) {
				t.Errorf("Expected growth between head and tail, got %v", s.Ordered())
			}
		})
	}
}

func TestEatRelocatesFoodInsideArena(t *testing.T) {
	w, _ := engine.NewTestWorld(10, 5, 11)
	idx := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(5, 5), pt(4, 5), pt(3, 5))

	for i := 0; i < 100; i++ {
		w.Food = []component.Food{component.NewFood(component.EffectNone, pt(5, 5))}
		Eat(w, idx)
		p := w.Food[0].Position
		if p == pt(5, 5) {
			t.Fatalf("Expected food to move off the eaten cell on round %d", i)
		}
		if int(p.X) >= 10 || int(p.Y) >= 10 {
			t.Fatalf("Relocated food %v outside [0,10)x[0,10)", p)
		}
	}
}

func TestEatFirstMatchOnly(t *testing.T) {
	w, _ := engine.NewTestWorld(20, 10, 5)
	idx := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(5, 5), pt(4, 5), pt(3, 5))
	w.Food = []component.Food{
		component.NewFood(component.EffectNourish, pt(5, 5)),
		component.NewFood(component.EffectSpeed, pt(5, 5)),
	}

	Eat(w, idx)

	if w.Snakes[idx].Len() != 5 {
		t.Errorf("Expected nourish growth only, got length %d", w.Snakes[idx].Len())
	}
	if w.Snakes[idx].Delay != parameter.InitialDelay {
		t.Errorf("Expected second food untouched, delay %d", w.Snakes[idx].Delay)
	}
	if w.Food[1].Position != pt(5, 5) {
		t.Errorf("Expected second food to stay, got %v", w.Food[1].Position)
	}
}

func TestEatCannibalFeed(t *testing.T) {
	w, mock := engine.NewTestWorld(20, 10, 5)
	a := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(4, 3), pt(3, 3), pt(2, 3))
	b := w.AddTestSnake(component.StrategyEat, core.DirUp, pt(4, 0), pt(4, 1), pt(4, 2), pt(4, 3))
	w.Food = []component.Food{component.NewFood(component.EffectNone, pt(15, 15))}

	w.Snakes[a].ActivateCannibal(w.Now())
	mock.Advance(3 * time.Second)

	if !Eat(w, a) {
		t.Fatal("Expected cannibal to feed on the rival tail")
	}
	if w.Snakes[b].Len() != 3 {
		t.Errorf("Expected victim shortened to 3, got %d", w.Snakes[b].Len())
	}
	if w.Snakes[a].Len() != 4 {
		t.Errorf("Expected cannibal grown to 4, got %d", w.Snakes[a].Len())
	}
	want := w.Now().Add(parameter.EffectDuration)
	if !w.Snakes[a].CannibalUntil.Equal(want) {
		t.Errorf("Expected cannibal deadline refreshed to %v, got %v", want, w.Snakes[a].CannibalUntil)
	}

	events := w.Events.Consume(nil)
	if len(events) != 1 || events[0].Type != engine.EventCannibalFeed || events[0].Other != b {
		t.Errorf("Expected one feed event on %d, got %v", b, events)
	}
}

func TestEatCannibalSparesMinimumLength(t *testing.T) {
	w, _ := engine.NewTestWorld(20, 10, 5)
	a := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(4, 2), pt(3, 2), pt(2, 2))
	b := w.AddTestSnake(component.StrategyEat, core.DirUp, pt(4, 0), pt(4, 1), pt(4, 2))
	w.Snakes[a].ActivateCannibal(w.Now())

	if Eat(w, a) {
		t.Error("Expected no feed on a minimum length rival")
	}
	if w.Snakes[a].Len() != 3 || w.Snakes[b].Len() != 3 {
		t.Errorf("Expected lengths unchanged, got %d and %d", w.Snakes[a].Len(), w.Snakes[b].Len())
	}
}

func TestEatWithoutPowerIgnoresTails(t *testing.T) {
	w, _ := engine.NewTestWorld(20, 10, 5)
	a := w.AddTestSnake(component.StrategyPlayer, core.DirRight, pt(4, 3), pt(3, 3), pt(2, 3))
	w.AddTestSnake(component.StrategyEat, core.DirUp, pt(4, 0), pt(4, 1), pt(4, 2), pt(4, 3))

	if Eat(w, a) {
		t.Error("Expected tail feeding to require cannibal mode")
	}
}

func TestFoodQueries(t *testing.T) {
	food := []component.Food{
		component.NewFood(component.EffectSpeed, pt(10, 5)),
		component.NewFood(component.EffectSpeed, pt(6, 8)),
		component.NewFood(component.EffectNone, pt(5, 7)),
	}
	from := pt(5, 5)

	if p, ok := LocateFood(food, from, component.EffectSpeed); !ok || p != pt(6, 8) {
		t.Errorf("Expected nearest speed food at (6,8), got %v %v", p, ok)
	}
	if _, ok := LocateFood(food, from, component.EffectCannibal); ok {
		t.Error("Expected no cannibal food")
	}
	if p, ok := NearestFood(food, from); !ok || p != pt(5, 7) {
		t.Errorf("Expected nearest food at (5,7), got %v %v", p, ok)
	}
	if _, ok := NearestFood(nil, from); ok {
		t.Error("Expected empty board to yield no food")
	}
}
