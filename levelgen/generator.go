// Package levelgen synthesises levels from a level index and a random
// stream. Each strategy lays random offsets over a fixed skeleton, so a
// layout's shape is stable while exact positions vary.
//
// Generated levels are not checked for jump reachability; Audit flags
// layouts whose goal looks out of reach without drawn platforms.
package levelgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

var ErrInvalidLevel = errors.New("invalid level index")

type Generator struct {
	spec      prefabs.GeneratorSpec
	platforms prefabs.PlatformsSpec
	spawn     cp.Vector
}

func New(t prefabs.Tuning) *Generator {
	return &Generator{
		spec:      t.Generator,
		platforms: t.Platforms,
		spawn:     cp.Vector{X: t.Player.SpawnX, Y: t.Generator.WorldHeight - t.Player.SpawnAboveBottom},
	}
}

// Difficulty scales generation parameters; it grows with the level index
// and stops at the configured cap.
func (g *Generator) Difficulty(level int) int {
	return min(level, g.spec.MaxDifficulty)
}

// MaxDrawn is the drawable platform budget for a difficulty.
func MaxDrawn(difficulty int) int {
	return 2 + difficulty/2
}

// StrategyFor picks the layout family for a level. The first levels follow
// a fixed introductory sequence; later ones draw uniformly from r.
func StrategyFor(level int, r *rand.Rand) Strategy {
	if level >= 1 && level <= len(introSequence) {
		return introSequence[level-1]
	}
	return Strategies[r.IntN(len(Strategies))]
}

// Generate builds the layout for level using r as its only source of
// randomness.
func (g *Generator) Generate(level int, r *rand.Rand) (world.Layout, error) {
	if level < 1 {
		return world.Layout{}, fmt.Errorf("levelgen: level %d: %w", level, ErrInvalidLevel)
	}
	if r == nil {
		return world.Layout{}, fmt.Errorf("levelgen: level %d: nil random stream", level)
	}
	return g.GenerateWith(level, StrategyFor(level, r), r)
}

// GenerateWith builds the layout for level with a forced strategy.
func (g *Generator) GenerateWith(level int, s Strategy, r *rand.Rand) (world.Layout, error) {
	if level < 1 {
		return world.Layout{}, fmt.Errorf("levelgen: level %d: %w", level, ErrInvalidLevel)
	}
	if r == nil {
		return world.Layout{}, fmt.Errorf("levelgen: level %d: nil random stream", level)
	}
	if _, ok := strategyNames[s]; !ok {
		return world.Layout{}, fmt.Errorf("levelgen: level %d: unknown strategy %d", level, int(s))
	}

	d := g.Difficulty(level)
	b := &builder{g: g, r: r}
	l := world.Layout{
		Level:    level,
		Strategy: s.String(),
		Width:    g.spec.WorldWidth,
		Height:   g.spec.WorldHeight,
		Spawn:    g.spawn,
		MaxDrawn: MaxDrawn(d),
	}

	ground := world.NewStatic(common.NewRect(0, g.spec.WorldHeight-g.spec.GroundHeight, g.spec.GroundWidth, g.spec.GroundHeight))
	l.Platforms = append(l.Platforms, ground)

	switch s {
	case HorizontalGaps:
		l.Platforms = append(l.Platforms, b.horizontalGaps(d)...)
	case VerticalClimb:
		l.Platforms = append(l.Platforms, b.verticalClimb(d)...)
	case MixedChallenge:
		l.Platforms = append(l.Platforms, b.mixedChallenge(d)...)
	case MazeLike:
		l.Platforms = append(l.Platforms, b.mazeLike(d)...)
	case TimingChallenge:
		l.Platforms = append(l.Platforms, b.timingChallenge(d)...)
	case MovingPlatforms:
		l.Platforms = append(l.Platforms, b.basicPlatforms(d)...)
		l.Moving = b.movingPlatforms(d)
	case SpikeGauntlet:
		l.Platforms = append(l.Platforms, b.spikeSafeZones(d)...)
		l.Spikes = b.spikes(d)
	case DisappearingChallenge:
		l.Platforms = append(l.Platforms, b.basicPlatforms(d)...)
		l.Disappearing = b.disappearingPlatforms(d)
	}

	goal := g.placeGoal(goalCandidates(l))
	l.Goals = []*world.Goal{goal}

	if r.Float64() < g.spec.CollectibleChance {
		l.Collectibles = b.collectibles(collectibleCandidates(l), d, cp.Vector{X: goal.X, Y: goal.Y})
	}

	if err := l.Validate(); err != nil {
		return world.Layout{}, fmt.Errorf("levelgen: level %d (%s): %w", level, s, err)
	}
	return l, nil
}

// goalCandidates is every platform except the ground, in the order the
// scorer breaks ties: static, moving, disappearing.
func goalCandidates(l world.Layout) []*world.Platform {
	out := make([]*world.Platform, 0, len(l.Platforms)+len(l.Moving)+len(l.Disappearing))
	out = append(out, l.Platforms[1:]...)
	out = append(out, l.Moving...)
	return append(out, l.Disappearing...)
}

func collectibleCandidates(l world.Layout) []*world.Platform {
	out := make([]*world.Platform, 0, len(l.Platforms)+len(l.Moving))
	out = append(out, l.Platforms[1:]...)
	return append(out, l.Moving...)
}
