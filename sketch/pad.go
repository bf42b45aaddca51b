// Package sketch turns pointer drags into temporary platforms.
package sketch

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

// Pad tracks at most one in-progress gesture. It does not know about the
// per-level drawing budget; callers check it before Start and before
// committing what Finish returns.
type Pad struct {
	minLength    float64
	thickness    float64
	fadeMS       int64
	fadeWindowMS int64

	drawing    bool
	start, end cp.Vector
}

func NewPad(s prefabs.SketchSpec, p prefabs.PlatformsSpec) *Pad {
	pad := &Pad{}
	pad.SetSpec(s, p)
	return pad
}

// SetSpec swaps the tuning; an in-progress gesture is kept.
func (p *Pad) SetSpec(s prefabs.SketchSpec, plat prefabs.PlatformsSpec) {
	p.minLength = s.MinLength
	p.thickness = s.Thickness
	p.fadeMS = plat.FadeMS
	p.fadeWindowMS = plat.FadeWindowMS
}

func (p *Pad) Start(pt cp.Vector) {
	p.drawing = true
	p.start = pt
	p.end = pt
}

func (p *Pad) Move(pt cp.Vector) {
	if !p.drawing {
		return
	}
	p.end = pt
}

// Finish ends the gesture at pt. It returns the platform the gesture
// describes, or false when the gesture was too short or had no horizontal
// extent. Either way the gesture is discarded.
func (p *Pad) Finish(pt cp.Vector, now int64) (*world.Platform, bool) {
	if !p.drawing {
		return nil, false
	}
	p.end = pt
	p.drawing = false

	r, ok := p.rect()
	if !ok {
		return nil, false
	}
	return world.NewTemporary(r, now, p.fadeMS, p.fadeWindowMS), true
}

func (p *Pad) Cancel() {
	p.drawing = false
}

func (p *Pad) Drawing() bool {
	return p.drawing
}

// Preview describes the gesture in progress for the renderer.
type Preview struct {
	Start  cp.Vector
	End    cp.Vector
	Length float64
	Valid  bool
}

func (p *Pad) Preview() (Preview, bool) {
	if !p.drawing {
		return Preview{}, false
	}
	_, ok := p.rect()
	return Preview{
		Start:  p.start,
		End:    p.end,
		Length: p.start.Distance(p.end),
		Valid:  ok,
	}, true
}

// rect spans the gesture horizontally at fixed thickness, topped at the
// higher of the two endpoints.
func (p *Pad) rect() (common.Rect, bool) {
	if p.start.Distance(p.end) < p.minLength {
		return common.Rect{}, false
	}
	r := common.NewRect(
		math.Min(p.start.X, p.end.X),
		math.Min(p.start.Y, p.end.Y),
		math.Abs(p.end.X-p.start.X),
		p.thickness,
	)
	if r.Validate() != nil {
		return common.Rect{}, false
	}
	return r, true
}
