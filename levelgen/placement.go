package levelgen

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/world"
)

// GoalScore rewards platforms that sit further right and higher up. Both
// terms are normalised by the world size.
func GoalScore(p *world.Platform, width, height float64) float64 {
	return p.X/width + (height-p.Y)/height
}

// placeGoal centres the goal over the best-scoring candidate. Ties keep the
// earlier candidate. With no candidate scoring above zero the goal falls
// back to a fixed spot near the right edge.
func (g *Generator) placeGoal(candidates []*world.Platform) *world.Goal {
	var best *world.Platform
	bestScore := 0.0
	for _, p := range candidates {
		if score := GoalScore(p, g.spec.WorldWidth, g.spec.WorldHeight); score > bestScore {
			best = p
			bestScore = score
		}
	}

	w, h := g.spec.GoalWidth, g.spec.GoalHeight
	if best == nil {
		return world.NewGoal(common.NewRect(g.spec.WorldWidth-100, g.spec.WorldHeight-200, w, h))
	}
	x := best.X + common.HalfFloor(best.Width) - common.HalfFloor(w)
	y := best.Y - g.spec.GoalMargin
	return world.NewGoal(common.NewRect(x, y, w, h))
}

// collectibles scatters pickups above random candidate platforms, retrying
// a bounded number of times when a spot lands too close to the goal.
func (b *builder) collectibles(candidates []*world.Platform, d int, goal cp.Vector) []*world.Collectible {
	if len(candidates) == 0 {
		return nil
	}
	spec := b.g.spec
	size := spec.CollectibleSize
	var out []*world.Collectible
	for i := 0; i < 1+d/3; i++ {
		for attempt := 0; attempt < spec.CollectibleAttempts; attempt++ {
			p := candidates[b.r.IntN(len(candidates))]
			pos := cp.Vector{
				X: p.X + float64(randInt(b.r, int(spec.CollectibleInsetLeft), int(p.Width-spec.CollectibleInsetRight))),
				Y: p.Y - spec.CollectibleLift,
			}
			if pos.Distance(goal) > spec.CollectibleMinGoalDistance {
				out = append(out, world.NewCollectible(common.NewRect(pos.X, pos.Y, size, size)))
				break
			}
		}
	}
	return out
}
