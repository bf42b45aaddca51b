package levelgen

import "math/rand/v2"

// LevelRand returns the generator stream for one level of a run. The same
// seed and level always yield the same layout.
func LevelRand(seed uint64, level int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(level)))
}

// randInt returns an integer in [lo, hi], both inclusive. An empty range
// collapses to lo.
func randInt(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
