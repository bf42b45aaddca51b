// Package physics moves the player through a world one frame at a time.
//
// A step is not sub-stepped: position integrates velocity once, so a fast
// fall can pass through a platform thinner than one frame of travel.
package physics

import (
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

const (
	walkAnimSpeed    = 0.2
	jumpStretchDecay = 0.05
)

// Input is the directional state sampled once per frame.
type Input struct {
	Left  bool
	Right bool
	// Jump gates the jump; the input layer decides whether holding the key
	// or only the press edge counts.
	Jump bool
}

type Config struct {
	MoveSpeed        float64
	JumpSpeed        float64
	Gravity          float64
	HazardCooldownMS int64
	CollectibleScore int
}

func ConfigFromSpec(s prefabs.PlayerSpec) Config {
	return Config{
		MoveSpeed:        s.MoveSpeed,
		JumpSpeed:        s.JumpSpeed,
		Gravity:          s.Gravity,
		HazardCooldownMS: s.HazardCooldownMS,
		CollectibleScore: s.CollectibleScore,
	}
}

type RespawnReason int

const (
	RespawnNone RespawnReason = iota
	RespawnHazard
	RespawnFell
)

func (r RespawnReason) String() string {
	switch r {
	case RespawnHazard:
		return "hazard"
	case RespawnFell:
		return "fell"
	default:
		return "none"
	}
}

// Report summarises what happened during one step.
type Report struct {
	Jumped    bool
	Landed    *world.Platform
	Triggered []*world.Platform
	Respawn   RespawnReason
	Collected []*world.Collectible
	Points    int
}

type Resolver struct {
	cfg Config
}

func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

func (r *Resolver) Config() Config {
	return r.cfg
}

func (r *Resolver) SetConfig(cfg Config) {
	r.cfg = cfg
}

// Step applies input, gravity and integration, then resolves contacts with
// active platforms, spikes and collectibles, and finally clamps the player
// to the world. Goal contact is left to the caller.
func (r *Resolver) Step(w *world.World, p *world.Player, in Input, now int64) Report {
	var rep Report
	if w == nil || p == nil {
		return rep
	}

	rep.Jumped = r.applyInput(p, in)

	p.Vel.Y += r.cfg.Gravity
	p.Pos = p.Pos.Add(p.Vel)

	r.resolvePlatforms(w, p, now, &rep)
	r.checkHazards(w, p, now, &rep)
	r.checkPickups(w, p, &rep)
	r.clampToWorld(w, p, &rep)

	return rep
}

func (r *Resolver) applyInput(p *world.Player, in Input) bool {
	p.Vel.X = 0
	switch {
	case in.Left && !in.Right:
		p.Vel.X = -r.cfg.MoveSpeed
		p.FacingRight = false
	case in.Right && !in.Left:
		p.Vel.X = r.cfg.MoveSpeed
		p.FacingRight = true
	}
	p.Walking = p.Vel.X != 0

	if p.Walking && p.Grounded {
		p.AnimFrame += walkAnimSpeed
	} else {
		p.AnimFrame = 0
	}
	if p.JumpStretch > 0 {
		p.JumpStretch = max(0, p.JumpStretch-jumpStretchDecay)
	}

	if !in.Jump || !p.Grounded {
		return false
	}
	p.Vel.Y = r.cfg.JumpSpeed
	p.Grounded = false
	p.JumpStretch = 1
	return true
}

// resolvePlatforms handles one contact per platform. Landing is checked
// first, then the ceiling, and anything else is a side hit.
func (r *Resolver) resolvePlatforms(w *world.World, p *world.Player, now int64, rep *Report) {
	p.Grounded = false
	for _, plat := range w.Platforms() {
		if !plat.Active || !p.Rect().Intersects(plat.Rect) {
			continue
		}

		if plat.Trigger(now) {
			rep.Triggered = append(rep.Triggered, plat)
		}

		switch {
		case p.Vel.Y > 0 && p.Pos.Y < plat.Top():
			p.Pos.Y = plat.Top() - p.Height
			p.Vel.Y = 0
			p.Grounded = true
			// carried in the same frame, after the snap
			p.Pos.X += plat.Displacement()
			rep.Landed = plat
		case p.Vel.Y < 0 && p.Pos.Y+p.Height > plat.Bottom():
			p.Pos.Y = plat.Bottom()
			p.Vel.Y = 0
		default:
			if p.Vel.X > 0 {
				p.Pos.X = plat.Left() - p.Width
			} else if p.Vel.X < 0 {
				p.Pos.X = plat.Right()
			}
		}
	}
}

// checkHazards respawns the player at most once per frame.
func (r *Resolver) checkHazards(w *world.World, p *world.Player, now int64, rep *Report) {
	for _, s := range w.Spikes {
		if !p.Rect().Intersects(s.Rect) {
			continue
		}
		if !p.HazardReady(now, r.cfg.HazardCooldownMS) {
			continue
		}
		p.MarkHazard(now)
		p.Respawn()
		rep.Respawn = RespawnHazard
		return
	}
}

func (r *Resolver) checkPickups(w *world.World, p *world.Player, rep *Report) {
	for _, c := range w.Collectibles {
		if c.Collected || !p.Rect().Intersects(c.Rect) {
			continue
		}
		if c.Collect() {
			p.Score += r.cfg.CollectibleScore
			rep.Points += r.cfg.CollectibleScore
			rep.Collected = append(rep.Collected, c)
		}
	}
}

func (r *Resolver) clampToWorld(w *world.World, p *world.Player, rep *Report) {
	p.Pos.X = common.Clamp(p.Pos.X, 0, w.Width-p.Width)
	if p.Pos.Y > w.Height {
		p.Respawn()
		rep.Respawn = RespawnFell
	}
}
