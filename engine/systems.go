package engine

import (
	"github.com/milk9111/sketchjump/physics"
)

const (
	collectiblePhaseStep = 0.2
	goalPhaseStep        = 0.1
)

// PlatformSystem advances every platform's timers before any collision
// test runs.
type PlatformSystem struct{}

func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{}
}

func (ps *PlatformSystem) Update(s *Session) error {
	if s == nil || s.world == nil {
		return nil
	}
	for _, p := range s.world.Platforms() {
		p.Update(s.now)
	}
	return nil
}

// PruneSystem drops drawn platforms that have faded out, which also frees
// their slot in the drawing budget.
type PruneSystem struct{}

func NewPruneSystem() *PruneSystem {
	return &PruneSystem{}
}

func (ps *PruneSystem) Update(s *Session) error {
	if s == nil || s.world == nil {
		return nil
	}
	if n := s.world.PruneDrawn(); n > 0 {
		s.logger.Debug("drawn platforms faded", "count", n)
	}
	return nil
}

type ResolverSystem struct{}

func NewResolverSystem() *ResolverSystem {
	return &ResolverSystem{}
}

func (rs *ResolverSystem) Update(s *Session) error {
	if s == nil || s.world == nil || s.player == nil {
		return nil
	}

	rep := s.resolver.Step(s.world, s.player, s.input.Move, s.now)
	s.report = rep

	if rep.Respawn != physics.RespawnNone {
		s.logger.Debug("player respawned", "reason", rep.Respawn, "level", s.level)
		s.events.Push(Event{Kind: EventRespawned, Level: s.level, Reason: rep.Respawn, At: s.now})
	}
	for range rep.Collected {
		s.events.Push(Event{
			Kind:   EventCollected,
			Level:  s.level,
			Points: s.resolver.Config().CollectibleScore,
			At:     s.now,
		})
	}
	if rep.Points > 0 {
		s.logger.Debug("collected", "points", rep.Points, "score", s.player.Score)
	}
	return nil
}

// AnimationSystem advances the idle animation phases the renderer reads.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (as *AnimationSystem) Update(s *Session) error {
	if s == nil || s.world == nil {
		return nil
	}
	for _, c := range s.world.Collectibles {
		if !c.Collected {
			c.Phase += collectiblePhaseStep
		}
	}
	for _, g := range s.world.Goals {
		g.Phase += goalPhaseStep
	}
	return nil
}

// GoalSystem moves the run to the next level once the player touches a
// goal. It runs last so the new world is untouched until the next frame.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (gs *GoalSystem) Update(s *Session) error {
	if s == nil || s.world == nil || s.player == nil {
		return nil
	}
	pr := s.player.Rect()
	for _, g := range s.world.Goals {
		if !pr.Intersects(g.Rect) {
			continue
		}
		s.logger.Info("goal reached", "level", s.level, "score", s.player.Score)
		s.events.Push(Event{Kind: EventGoalReached, Level: s.level, Strategy: s.world.Strategy, At: s.now})
		return s.Advance(s.now)
	}
	return nil
}
