package engine

import (
	"github.com/milk9111/sketchjump/physics"
	"github.com/milk9111/sketchjump/world"
)

// EventKind identifies what happened during a frame.
type EventKind string

const (
	EventLevelLoaded     EventKind = "level_loaded"
	EventLevelReset      EventKind = "level_reset"
	EventRespawned       EventKind = "respawned"
	EventCollected       EventKind = "collected"
	EventPlatformDrawn   EventKind = "platform_drawn"
	EventGestureRejected EventKind = "gesture_rejected"
	EventDrawnCleared    EventKind = "drawn_cleared"
	EventGoalReached     EventKind = "goal_reached"
)

// Event is emitted by the session for the shell to log or display. Only
// the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Level    int
	Strategy string
	Reason   physics.RespawnReason
	Points   int
	Platform *world.Platform
	At       int64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
