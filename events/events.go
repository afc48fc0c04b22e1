// Package events carries fire-and-forget notifications out of the
// simulation core. Systems append events during a tick; the presentation
// layer drains the queue once per frame. The core never waits on a
// consumer and a dropped queue loses nothing but UI refreshes.
package events

// SpecialType identifies the player's secondary armament.
type SpecialType int

const (
	SpecialBall SpecialType = iota
	SpecialMissileSide
	SpecialMissileDown
	SpecialStar
)

// String returns the display name of the special weapon.
func (t SpecialType) String() string {
	switch t {
	case SpecialBall:
		return "BALL"
	case SpecialMissileSide:
		return "MISSILE"
	case SpecialMissileDown:
		return "BOMB"
	case SpecialStar:
		return "STAR"
	}
	return "?"
}

// Event is one outbound notification. Exactly one concrete type hides
// behind the interface; consumers type-switch.
type Event interface{ isEvent() }

// ScoreChanged reports the new total score.
type ScoreChanged struct{ Score int }

// BaseCountChanged reports the number of bases still standing.
type BaseCountChanged struct{ Bases int }

// SpecialChanged reports a change of the equipped special weapon.
type SpecialChanged struct{ Special SpecialType }

// SpecialAmmoChanged reports the new special ammo count.
type SpecialAmmoChanged struct{ Ammo int }

// RoomChanged reports that the player crossed into another room.
type RoomChanged struct{ Row, Col int }

func (ScoreChanged) isEvent()       {}
func (BaseCountChanged) isEvent()   {}
func (SpecialChanged) isEvent()     {}
func (SpecialAmmoChanged) isEvent() {}
func (RoomChanged) isEvent()        {}

// Queue is an append-only event buffer drained once per tick. The whole
// simulation runs on one goroutine, so no locking is needed; a concurrent
// reimplementation would have to serialize Push and Drain.
type Queue struct {
	pending []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns all queued events in push order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of undrained events.
func (q *Queue) Len() int {
	return len(q.pending)
}
