package parameter

import "time"

// Game Loop Timing
const (
	// DefaultFPS is the target render rate
	DefaultFPS = 30

	// MaxFPS bounds the configurable render rate
	MaxFPS = 240

	// EventLoopInterval is the loop idle sleep between input polls
	EventLoopInterval = 1 * time.Millisecond

	// InputQueueSize is the capacity of the terminal event channel
	InputQueueSize = 256

	// EventQueueSize is the capacity of the per-frame game event queue
	EventQueueSize = 256
)

// Agents
const (
	// DefaultAgentCount includes the player
	DefaultAgentCount = 6

	// MaxAgentCount bounds the configurable agent count
	MaxAgentCount = 32
)

// EventBufferMask indexes the event ring; EventQueueSize must stay a power of two
const EventBufferMask = EventQueueSize - 1
