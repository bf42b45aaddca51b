package engine

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/physics"
)

type InputKind int

const (
	InputReset InputKind = iota
	InputClearDrawn
	InputGestureStart
	InputGestureMove
	InputGestureEnd
)

// InputEvent is a discrete request from the input layer. Point is in world
// coordinates and only meaningful for gesture events.
type InputEvent struct {
	Kind  InputKind
	Point cp.Vector
}

// FrameInput is everything the input layer reports for one frame.
type FrameInput struct {
	Move   physics.Input
	Events []InputEvent
}

func GestureStart(pt cp.Vector) InputEvent { return InputEvent{Kind: InputGestureStart, Point: pt} }
func GestureMove(pt cp.Vector) InputEvent  { return InputEvent{Kind: InputGestureMove, Point: pt} }
func GestureEnd(pt cp.Vector) InputEvent   { return InputEvent{Kind: InputGestureEnd, Point: pt} }

// Drag turns per-tick pointer button edges into gesture events. A press
// and release seen in the same tick yield a start and an end.
type Drag struct {
	active bool
}

func (d *Drag) Sample(pressed, released bool, pt cp.Vector) []InputEvent {
	var out []InputEvent
	if pressed {
		d.active = true
		out = append(out, GestureStart(pt))
	} else if d.active && !released {
		out = append(out, GestureMove(pt))
	}
	if d.active && released {
		d.active = false
		out = append(out, GestureEnd(pt))
	}
	return out
}

func (d *Drag) Active() bool { return d.active }

// Cancel drops a drag in progress without emitting an end.
func (d *Drag) Cancel() { d.active = false }
