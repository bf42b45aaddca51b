package world

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Layout is what the level generator produces for one level index.
type Layout struct {
	Level    int       `json:"level" yaml:"level"`
	Strategy string    `json:"strategy" yaml:"strategy"`
	Width    float64   `json:"width" yaml:"width"`
	Height   float64   `json:"height" yaml:"height"`
	Spawn    cp.Vector `json:"spawn" yaml:"spawn"`

	// Platforms holds the static platforms; index 0 is always the ground.
	Platforms    []*Platform    `json:"platforms" yaml:"platforms"`
	Moving       []*Platform    `json:"moving,omitempty" yaml:"moving,omitempty"`
	Spikes       []*Spike       `json:"spikes,omitempty" yaml:"spikes,omitempty"`
	Collectibles []*Collectible `json:"collectibles,omitempty" yaml:"collectibles,omitempty"`
	Disappearing []*Platform    `json:"disappearing,omitempty" yaml:"disappearing,omitempty"`
	Goals        []*Goal        `json:"goals" yaml:"goals"`
	MaxDrawn     int            `json:"max_drawn" yaml:"max_drawn"`
}

// Validate checks the layout at the boundary so the per-frame path can
// assume well-formed rectangles.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("world: layout %gx%g: %w", l.Width, l.Height, ErrInvalidLayout)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("world: layout has no ground platform: %w", ErrInvalidLayout)
	}
	for _, group := range [][]*Platform{l.Platforms, l.Moving, l.Disappearing} {
		for i, p := range group {
			if p == nil {
				return fmt.Errorf("world: nil platform %d: %w", i, ErrInvalidLayout)
			}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("world: platform %d: %w", i, err)
			}
		}
	}
	for i, s := range l.Spikes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("world: spike %d: %w", i, err)
		}
	}
	for i, c := range l.Collectibles {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("world: collectible %d: %w", i, err)
		}
	}
	for i, g := range l.Goals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("world: goal %d: %w", i, err)
		}
	}
	if l.MaxDrawn < 0 {
		return fmt.Errorf("world: max drawn %d: %w", l.MaxDrawn, ErrInvalidLayout)
	}
	return nil
}

// World is the live state of one level. The frame loop owns it and swaps in
// a fresh World on every level transition or reset.
type World struct {
	Level    int
	Strategy string
	Width    float64
	Height   float64
	Spawn    cp.Vector

	Spikes       []*Spike
	Collectibles []*Collectible
	Goals        []*Goal
	MaxDrawn     int

	static       []*Platform
	drawn        []*Platform
	moving       []*Platform
	disappearing []*Platform
}

// New builds a World from a generated layout. The layout's entities are
// shared, not copied; callers hand over ownership.
// Clone deep-copies every entity so a World built from the copy leaves l
// untouched.
func (l Layout) Clone() Layout {
	out := l
	out.Platforms = cloneAll(l.Platforms)
	out.Moving = cloneAll(l.Moving)
	out.Spikes = cloneAll(l.Spikes)
	out.Collectibles = cloneAll(l.Collectibles)
	out.Disappearing = cloneAll(l.Disappearing)
	out.Goals = cloneAll(l.Goals)
	return out
}

func cloneAll[T any](in []*T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		c := *v
		out[i] = &c
	}
	return out
}

func New(l Layout) *World {
	return &World{
		Level:        l.Level,
		Strategy:     l.Strategy,
		Width:        l.Width,
		Height:       l.Height,
		Spawn:        l.Spawn,
		Spikes:       l.Spikes,
		Collectibles: l.Collectibles,
		Goals:        l.Goals,
		MaxDrawn:     l.MaxDrawn,
		static:       l.Platforms,
		moving:       l.Moving,
		disappearing: l.Disappearing,
	}
}

// Platforms returns every platform in collision order: static, drawn,
// moving, then disappearing.
func (w *World) Platforms() []*Platform {
	if w == nil {
		return nil
	}
	all := make([]*Platform, 0, len(w.static)+len(w.drawn)+len(w.moving)+len(w.disappearing))
	all = append(all, w.static...)
	all = append(all, w.drawn...)
	all = append(all, w.moving...)
	return append(all, w.disappearing...)
}

func (w *World) Static() []*Platform       { return w.static }
func (w *World) Drawn() []*Platform        { return w.drawn }
func (w *World) Moving() []*Platform       { return w.moving }
func (w *World) Disappearing() []*Platform { return w.disappearing }

// CanDraw reports whether another drawn platform fits in the level budget.
func (w *World) CanDraw() bool {
	return w != nil && len(w.drawn) < w.MaxDrawn
}

// DrawnRemaining is the number of platforms the player may still draw.
func (w *World) DrawnRemaining() int {
	if w == nil {
		return 0
	}
	return max(0, w.MaxDrawn-len(w.drawn))
}

// AddDrawn commits a drawn platform if the budget allows it.
func (w *World) AddDrawn(p *Platform) bool {
	if p == nil || !w.CanDraw() {
		return false
	}
	w.drawn = append(w.drawn, p)
	return true
}

func (w *World) ClearDrawn() {
	if w == nil {
		return
	}
	w.drawn = nil
}

// PruneDrawn drops drawn platforms that have faded out and returns how many
// were removed.
func (w *World) PruneDrawn() int {
	if w == nil {
		return 0
	}
	kept := w.drawn[:0]
	for _, p := range w.drawn {
		if p.Active {
			kept = append(kept, p)
		}
	}
	removed := len(w.drawn) - len(kept)
	clear(w.drawn[len(kept):])
	w.drawn = kept
	return removed
}

// Remaining counts uncollected collectibles.
func (w *World) Remaining() int {
	n := 0
	for _, c := range w.Collectibles {
		if !c.Collected {
			n++
		}
	}
	return n
}
