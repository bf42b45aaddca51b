package levelgen

import (
	"math"

	"github.com/milk9111/sketchjump/prefabs"
	"github.com/milk9111/sketchjump/world"
)

// Reach is the rough extent of a single jump. Height is the player's own
// height, which a jump adds on top of Rise when only touching counts.
type Reach struct {
	Rise   float64
	Run    float64
	Height float64
}

// JumpReach derives the jump envelope from the player tuning: the apex
// height of a jump and the horizontal distance covered while airborne
// back to take-off height.
func JumpReach(s prefabs.PlayerSpec) Reach {
	v := -s.JumpSpeed
	airFrames := 2 * v / s.Gravity
	return Reach{
		Rise:   v * v / (2 * s.Gravity),
		Run:    s.MoveSpeed * airFrames,
		Height: s.Height,
	}
}

// Audit reports whether the goal can be reached by hopping between the
// generated platforms alone, starting from the ground. It is a coarse
// heuristic: moving platforms count at their start position and drawn
// platforms are ignored, so a false result only flags the level.
func Audit(l world.Layout, reach Reach) bool {
	if len(l.Platforms) == 0 || len(l.Goals) == 0 {
		return false
	}
	all := make([]*world.Platform, 0, len(l.Platforms)+len(l.Moving)+len(l.Disappearing))
	all = append(all, l.Platforms...)
	all = append(all, l.Moving...)
	all = append(all, l.Disappearing...)

	goal := l.Goals[0]
	visited := make([]bool, len(all))
	visited[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		cur := all[queue[0]]
		queue = queue[1:]

		// The goal only has to be touched, so the player's head may reach it
		// at the apex.
		if hopReachable(cur, goal.Rect.X, goal.Rect.Width, goal.Rect.Bottom()+reach.Height, reach) {
			return true
		}
		for i, next := range all {
			if visited[i] || !hopReachable(cur, next.X, next.Width, next.Top(), reach) {
				continue
			}
			visited[i] = true
			queue = append(queue, i)
		}
	}
	return false
}

// hopReachable tests a jump from the top of from to a surface spanning
// [x, x+w] at height top.
func hopReachable(from *world.Platform, x, w, top float64, reach Reach) bool {
	if from.Top()-top > reach.Rise {
		return false
	}
	gap := math.Max(0, math.Max(x-from.Right(), from.Left()-(x+w)))
	return gap <= reach.Run
}
