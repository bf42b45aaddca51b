// Package levelview browses generated layouts in the terminal.
package levelview

import (
	"math"

	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/world"
)

// Glyph is what a grid cell shows. Later glyphs draw over earlier ones.
type Glyph int

const (
	GlyphEmpty Glyph = iota
	GlyphStatic
	GlyphMoving
	GlyphMovingTrack
	GlyphDisappearing
	GlyphSpike
	GlyphCollectible
	GlyphGoal
	GlyphSpawn
)

var glyphRunes = map[Glyph]rune{
	GlyphEmpty:        ' ',
	GlyphStatic:       '=',
	GlyphMoving:       '~',
	GlyphMovingTrack:  '.',
	GlyphDisappearing: ':',
	GlyphSpike:        '^',
	GlyphCollectible:  '*',
	GlyphGoal:         'G',
	GlyphSpawn:        '@',
}

func (g Glyph) Rune() rune {
	if r, ok := glyphRunes[g]; ok {
		return r
	}
	return '?'
}

// Grid is a character raster of a layout.
type Grid struct {
	cols, rows int
	// world size the cells span
	w, h  float64
	cells []Glyph
}

func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Grid{cols: cols, rows: rows, cells: make([]Glyph, cols*rows)}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

func (g *Grid) At(col, row int) Glyph {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return GlyphEmpty
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) set(col, row int, glyph Glyph) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = glyph
}

// fill marks every cell the rectangle touches; anything with extent gets
// at least one cell.
func (g *Grid) fill(r common.Rect, glyph Glyph) {
	c0 := int(math.Floor(g.col(r.Left())))
	c1 := max(c0, int(math.Ceil(g.col(r.Right())))-1)
	r0 := int(math.Floor(g.row(r.Top())))
	r1 := max(r0, int(math.Ceil(g.row(r.Bottom())))-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.set(col, row, glyph)
		}
	}
}

func (g *Grid) col(x float64) float64 { return x * float64(g.cols) / g.w }
func (g *Grid) row(y float64) float64 { return y * float64(g.rows) / g.h }

// Rasterize scales a layout down to cols x rows cells. Moving platforms are
// drawn at their current position over a dotted track of their range.
func Rasterize(l world.Layout, cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	if l.Width <= 0 || l.Height <= 0 {
		return g
	}
	g.w, g.h = l.Width, l.Height

	for _, p := range l.Platforms {
		g.fill(p.Rect, GlyphStatic)
	}
	for _, p := range l.Moving {
		track := common.NewRect(p.Moving.StartX, p.Y, p.Moving.EndX-p.Moving.StartX+p.Width, p.Height)
		g.fill(track, GlyphMovingTrack)
		g.fill(p.Rect, GlyphMoving)
	}
	for _, p := range l.Disappearing {
		g.fill(p.Rect, GlyphDisappearing)
	}
	for _, s := range l.Spikes {
		g.fill(s.Rect, GlyphSpike)
	}
	for _, c := range l.Collectibles {
		if !c.Collected {
			g.fill(c.Rect, GlyphCollectible)
		}
	}
	for _, goal := range l.Goals {
		g.fill(goal.Rect, GlyphGoal)
	}
	g.set(int(g.col(l.Spawn.X)), int(g.row(l.Spawn.Y)), GlyphSpawn)
	return g
}
