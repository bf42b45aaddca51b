package common

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned box with its origin at the top-left corner and y
// growing downward.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Intersects reports strict overlap; rectangles that only share an edge do
// not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// BB converts to a chipmunk bounding box. Chipmunk uses L/B/R/T names but
// no particular y direction, so B holds the smaller y.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Validate rejects rectangles that cannot take part in overlap tests.
func (r Rect) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("rect %.1fx%.1f at (%.1f,%.1f): %w", r.Width, r.Height, r.X, r.Y, ErrInvalidRect)
	}
	return nil
}
