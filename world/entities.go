package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
)

// Player is the single controllable character. Pos is the top-left corner.
type Player struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Width  float64
	Height float64
	Spawn  cp.Vector

	Grounded    bool
	FacingRight bool
	Walking     bool
	Score       int

	// JumpStretch decays from 1 after a jump; AnimFrame advances while
	// walking on the ground. Both are read by the renderer only.
	JumpStretch float64
	AnimFrame   float64

	lastHazardHit int64
	hazardHit     bool
}

func NewPlayer(spawn cp.Vector, width, height float64) *Player {
	return &Player{
		Pos:         spawn,
		Width:       width,
		Height:      height,
		Spawn:       spawn,
		FacingRight: true,
	}
}

func (p *Player) Rect() common.Rect {
	return common.NewRect(p.Pos.X, p.Pos.Y, p.Width, p.Height)
}

// Respawn moves the player back to its spawn point and stops it. Score is
// kept.
func (p *Player) Respawn() {
	p.Pos = p.Spawn
	p.Vel = cp.Vector{}
}

// HazardReady reports whether the hazard cooldown has elapsed. The first
// hit is never gated.
func (p *Player) HazardReady(now, cooldownMS int64) bool {
	return !p.hazardHit || now-p.lastHazardHit >= cooldownMS
}

func (p *Player) MarkHazard(now int64) {
	p.lastHazardHit = now
	p.hazardHit = true
}

// LastHazardHit returns the time of the last damaging contact.
func (p *Player) LastHazardHit() (int64, bool) {
	return p.lastHazardHit, p.hazardHit
}

// Spike is a stateless hazard.
type Spike struct {
	common.Rect `yaml:",inline"`
}

func NewSpike(r common.Rect) *Spike {
	return &Spike{Rect: r}
}

// Collectible awards score once, on first overlap.
type Collectible struct {
	common.Rect `yaml:",inline"`
	Collected   bool    `json:"collected" yaml:"collected"`
	Phase       float64 `json:"-" yaml:"-"`
}

func NewCollectible(r common.Rect) *Collectible {
	return &Collectible{Rect: r}
}

// Collect marks the collectible taken and reports whether this call did it.
func (c *Collectible) Collect() bool {
	if c == nil || c.Collected {
		return false
	}
	c.Collected = true
	return true
}

// Goal advances the run to the next level on contact.
type Goal struct {
	common.Rect `yaml:",inline"`
	Phase       float64 `json:"-" yaml:"-"`
}

func NewGoal(r common.Rect) *Goal {
	return &Goal{Rect: r}
}
