package component

import (
	"slices"
	"time"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// Snake is one agent: a ring buffer body plus movement and power state
// Body is addressed by a head index; the logical order runs head, head+1, ..., head-1 (tail)
type Snake struct {
	Name     string
	Color    uint8
	Strategy Strategy

	Direction core.Direction

	// Delay is the movement interval in milliseconds; lower is faster
	Delay uint8

	// Alive is false while the death shrink animation runs
	Alive bool

	// CannibalUntil is the deadline of cannibal mode
	CannibalUntil time.Time

	body     []core.Point
	head     int
	lastMove time.Time
}

// NewSnake creates a snake with every segment stacked on pos
func NewSnake(name string, strategy Strategy, length int, pos core.Point, dir core.Direction, now time.Time) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]core.Point, length)
	for i := range body {
		body[i] = pos
	}
	return newSnake(name, strategy, body, length-1, dir, now)
}

// NewSnakeFromBody creates a snake from segments listed head first
func NewSnakeFromBody(name string, strategy Strategy, segments []core.Point, dir core.Direction, now time.Time) *Snake {
	body := slices.Clone(segments)
	if len(body) == 0 {
		body = []core.Point{{}}
	}
	return newSnake(name, strategy, body, 0, dir, now)
}

func newSnake(name string, strategy Strategy, body []core.Point, head int, dir core.Direction, now time.Time) *Snake {
	return &Snake{
		Name:          name,
		Color:         strategy.Color(),
		Strategy:      strategy,
		Direction:     dir,
		Delay:         parameter.InitialDelay,
		Alive:         true,
		CannibalUntil: now.Add(-parameter.EffectDuration),
		body:          body,
		head:          head,
		lastMove:      now,
	}
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head segment
func (s *Snake) Head() core.Point {
	return s.body[s.head]
}

// HeadIndex returns the ring index of the head
func (s *Snake) HeadIndex() int {
	return s.head
}

// TailIndex returns the ring index of the tail
func (s *Snake) TailIndex() int {
	return cycleBack(len(s.body), s.head)
}

// Tail returns the tail segment
func (s *Snake) Tail() core.Point {
	return s.body[s.TailIndex()]
}

// Segments exposes the ring storage for read-only iteration
// Index order is storage order; compare against HeadIndex/TailIndex for roles
func (s *Snake) Segments() []core.Point {
	return s.body
}

// Ordered returns a copy of the body from head to tail
func (s *Snake) Ordered() []core.Point {
	out := make([]core.Point, 0, len(s.body))
	out = append(out, s.body[s.head:]...)
	return append(out, s.body[:s.head]...)
}

// Speed is the displayed speed, the inverse of the delay
func (s *Snake) Speed() int {
	return parameter.MaxDelay - int(s.Delay)
}

// CanMove reports whether the snake's own interval has elapsed and restarts it
func (s *Snake) CanMove(now time.Time) bool {
	if now.Sub(s.lastMove) >= time.Duration(s.Delay)*time.Millisecond {
		s.lastMove = now
		return true
	}
	return false
}

// AddSpeed lowers the delay by n without wrapping below zero
func (s *Snake) AddSpeed(n uint8) {
	if n > s.Delay {
		s.Delay = 0
		return
	}
	s.Delay -= n
}

// ReduceSpeed raises the delay by n without wrapping past the maximum
func (s *Snake) ReduceSpeed(n uint8) {
	if int(s.Delay)+int(n) > parameter.MaxDelay {
		s.Delay = parameter.MaxDelay
		return
	}
	s.Delay += n
}

// Steer changes heading unless d would reverse onto the body
func (s *Snake) Steer(d core.Direction) {
	if d == s.Direction.Inverse() {
		return
	}
	s.Direction = d
}

// IsCannibal reports whether cannibal mode is active at now
func (s *Snake) IsCannibal(now time.Time) bool {
	return now.Before(s.CannibalUntil)
}

// ActivateCannibal opens a fresh cannibal window from now
func (s *Snake) ActivateCannibal(now time.Time) {
	s.CannibalUntil = now.Add(parameter.EffectDuration)
}

// ClearCannibal expires cannibal mode immediately
func (s *Snake) ClearCannibal(now time.Time) {
	s.CannibalUntil = now.Add(-parameter.EffectDuration)
}

// Advance moves the head to p by reusing the tail slot; length is unchanged
func (s *Snake) Advance(p core.Point) {
	s.head = s.TailIndex()
	s.body[s.head] = p
}

// Grow adds n segments at p directly behind the head
// The new segments are the last to be recycled, so the tail holds still while they unwind
func (s *Snake) Grow(n int, p core.Point) {
	if n <= 0 {
		return
	}
	extra := make([]core.Point, n)
	for i := range extra {
		extra[i] = p
	}
	s.body = slices.Insert(s.body, s.head+1, extra...)
}

// ShedTail removes the tail segment if the body stays viable
func (s *Snake) ShedTail() bool {
	if len(s.body) <= parameter.MinSnakeLength {
		return false
	}
	ti := s.TailIndex()
	s.body = slices.Delete(s.body, ti, ti+1)
	if ti < s.head {
		s.head--
	}
	return true
}

// Respawn revives the snake with its whole body stacked on p
func (s *Snake) Respawn(p core.Point) {
	for i := range s.body {
		s.body[i] = p
	}
	s.Alive = true
}

// cycleBack returns the ring index before i
func cycleBack(n, i int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}
