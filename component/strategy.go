package component

import "github.com/lixenwraith/serpent/parameter"

// Strategy selects how an agent picks its target
type Strategy uint8

const (
	// StrategyPlayer is steered by the keyboard
	StrategyPlayer Strategy = iota
	// StrategySpeed hunts speed food
	StrategySpeed
	// StrategyScore hunts nourish food
	StrategyScore
	// StrategyEat hunts the nearest food of any kind
	StrategyEat
	// StrategyKill hunts the longest slower rival's head
	StrategyKill
	// StrategyCannibal hunts cannibal food
	StrategyCannibal
)

// strategyCount is the number of strategies including the player
const strategyCount = 6

var strategyNames = [strategyCount]string{"player", "speed", "score", "eat", "kill", "cannibal"}

var strategyColors = [strategyCount]uint8{
	parameter.ColorPlayer,
	parameter.ColorSpeed,
	parameter.ColorScore,
	parameter.ColorEat,
	parameter.ColorKill,
	parameter.ColorCannibal,
}

// Color returns the body color of snakes following s
func (s Strategy) Color() uint8 {
	if int(s) < strategyCount {
		return strategyColors[s]
	}
	return parameter.ColorPlayer
}

func (s Strategy) String() string {
	if int(s) < strategyCount {
		return strategyNames[s]
	}
	return "unknown"
}

// AgentStrategyFromIndex maps any integer onto a non-player strategy
func AgentStrategyFromIndex(i int) Strategy {
	if i < 0 {
		i = -i
	}
	return Strategy(1 + i%(strategyCount-1))
}
