package component

import (
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// Effect is the power a food grants on top of growth
type Effect uint8

const (
	EffectNone Effect = iota
	EffectSpeed
	EffectNourish
	EffectCannibal
)

// EffectCount is the number of food kinds; one of each is kept on the board
const EffectCount = 4

var effectNames = [EffectCount]string{"none", "speed", "nourish", "cannibal"}

func (e Effect) String() string {
	if int(e) < EffectCount {
		return effectNames[e]
	}
	return "unknown"
}

// Food is an item on the board
type Food struct {
	Shape    rune
	Position core.Point
	Color    uint8
	Effect   Effect
}

// NewFood creates a food of the given effect at pos
func NewFood(effect Effect, pos core.Point) Food {
	f := Food{Position: pos, Effect: effect}
	switch effect {
	case EffectSpeed:
		f.Shape, f.Color = parameter.GlyphFoodSpeed, parameter.ColorFoodSpeed
	case EffectNourish:
		f.Shape, f.Color = parameter.GlyphFoodNourish, parameter.ColorFoodNourish
	case EffectCannibal:
		f.Shape, f.Color = parameter.GlyphFoodCannibal, parameter.ColorFoodCannibal
	default:
		f.Effect = EffectNone
		f.Shape, f.Color = parameter.GlyphFoodNone, parameter.ColorFoodNone
	}
	return f
}

// Growth is the number of segments the food adds
func (f Food) Growth() int {
	if f.Effect == EffectNourish {
		return parameter.BaseGrowth + parameter.NourishBonusGrowth
	}
	return parameter.BaseGrowth
}
