package parameter

import "time"

// Snake body limits
const (
	// MinSnakeLength is the shortest viable body; dying snakes respawn instead of shedding below it
	MinSnakeLength = 3

	// InitialSnakeLength is the body length every agent starts with
	InitialSnakeLength = 5
)

// Snake movement delay in milliseconds; display speed is MaxDelay - delay
const (
	MaxDelay = 255

	// InitialDelay is the starting movement delay for every agent
	InitialDelay = 55

	// DyingDelay slows a dead snake's shrink animation
	DyingDelay = 80

	// SpeedBoostAmount is subtracted from the delay by a speed food (saturating)
	SpeedBoostAmount = 3

	// PlayerDelayStep is the delay change per +/- key press
	PlayerDelayStep = 1
)

// Food growth
const (
	// BaseGrowth is the number of segments gained from any food
	BaseGrowth = 1

	// NourishBonusGrowth is added on top of BaseGrowth by nourish food
	NourishBonusGrowth = 1

	// CannibalFeedGrowth is gained per tail segment eaten in cannibal mode
	CannibalFeedGrowth = 1
)

// EffectDuration is the cannibal mode window
const EffectDuration = 10 * time.Second

// Targeting margins on movement delay
// A rival qualifies when its delay exceeds ours by more than the margin (it is slower)
const (
	// CannibalHuntMargin applies to the cannibal-mode tail hunt
	CannibalHuntMargin = 4

	// KillHuntMargin applies to kill-seeker head targeting
	KillHuntMargin = 10
)

// Steering wrap shortcut tie-breaks
const (
	// HorizontalShortcutBias is added to the arena width before halving
	HorizontalShortcutBias = 1

	// VerticalShortcutBias is added to the arena physical height
	VerticalShortcutBias = 2
)

// SnakeNames is the pool agent names are drawn from
var SnakeNames = []string{
	"Asp", "Boa", "Cobra", "Krait", "Mamba", "Viper", "Adder", "Taipan",
	"Python", "Racer", "Garter", "Sidewinder", "Anaconda", "Copperhead",
	"Rattler", "Kingsnake", "Whipsnake", "Bushmaster", "Habu", "Naja",
}
