package engine

import (
	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/parameter"
)

// EventType is the kind of a simulation event
type EventType uint8

const (
	// EventEat: Snake consumed a food of Effect
	EventEat EventType = iota
	// EventKill: Snake (the killer) absorbed Other's length, Amount segments
	EventKill
	// EventDeath: Snake crashed; Other is the killer or -1
	EventDeath
	// EventRespawn: Snake finished shedding and reappeared
	EventRespawn
	// EventCannibalFeed: Snake ate a tail segment of Other
	EventCannibalFeed

	eventTypeCount
)

// EventTypeCount is the number of distinct event types
const EventTypeCount = int(eventTypeCount)

var eventNames = [eventTypeCount]string{"eat", "kill", "death", "respawn", "feed"}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventNames[t]
	}
	return "unknown"
}

// Event records a state transition for audio, telemetry and logs
type Event struct {
	Type   EventType
	Snake  int
	Other  int
	Effect component.Effect
	Amount int
	Tick   uint64
}

// EventQueue is a bounded FIFO ring owned by the game loop
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // read index
	tail   uint64 // write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when full
func (q *EventQueue) Push(ev Event) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume appends pending events to buf in FIFO order and empties the queue
func (q *EventQueue) Consume(buf []Event) []Event {
	for ; q.head < q.tail; q.head++ {
		buf = append(buf, q.events[q.head&parameter.EventBufferMask])
	}
	return buf
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	return int(q.tail - q.head)
}
