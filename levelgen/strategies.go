package levelgen

import (
	"math/rand/v2"

	"github.com/milk9111/sketchjump/common"
	"github.com/milk9111/sketchjump/world"
)

// builder carries the random stream through one level's strategies.
type builder struct {
	g *Generator
	r *rand.Rand
}

func (b *builder) dims() (int, int) {
	return int(b.g.spec.WorldWidth), int(b.g.spec.WorldHeight)
}

func (b *builder) static(x, y, w int) *world.Platform {
	return world.NewStatic(common.NewRect(float64(x), float64(y), float64(w), b.g.platforms.Thickness))
}

// horizontalGaps walks right from x=250 placing ledges separated by gaps
// that widen with difficulty, then adds a landing ledge near the edge.
func (b *builder) horizontalGaps(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	gap := 150 + randInt(b.r, 0, 100+d*10)
	x := 250
	for i := 0; i < 2+d/2; i++ {
		w := 80 + randInt(b.r, 0, 40)
		y := H - 150 - randInt(b.r, 0, 100)
		out = append(out, b.static(x, y, w))

		x += w + gap
		gap = 120 + randInt(b.r, 0, 80+d*15)
		if x > W-200 {
			break
		}
	}

	if x < W-150 {
		out = append(out, b.static(W-150, H-200-randInt(b.r, 0, 100), 100))
	}
	return out
}

// verticalClimb zigzags ledges upward between the left and right halves.
func (b *builder) verticalClimb(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	y := H - 150
	for i := 0; i < 3+d/2; i++ {
		var x int
		if i%2 == 0 {
			x = 100 + randInt(b.r, 0, 200)
		} else {
			x = W - 300 + randInt(b.r, 0, 200)
		}
		w := 80 + randInt(b.r, 0, 60)
		out = append(out, b.static(x, y, w))

		y -= 120 + randInt(b.r, 20, 60)
		if y < 100 {
			break
		}
	}
	return out
}

// mixedChallenge opens with the first two ledges of an easier horizontal
// section and follows with a climb around the middle of the world.
func (b *builder) mixedChallenge(d int) []*world.Platform {
	W, H := b.dims()

	out := b.horizontalGaps(d/2 + 1)
	if len(out) > 2 {
		out = out[:2]
	}

	startX := W/2 + randInt(b.r, -100, 100)
	y := H - 200
	for i := 0; i < 2+d/3; i++ {
		x := startX + randInt(b.r, -80, 80)
		w := 60 + randInt(b.r, 0, 40)
		out = append(out, b.static(x, y, w))
		y -= 100 + randInt(b.r, 20, 40)
	}
	return out
}

const (
	mazeColumns = 8
	mazeRows    = 6
)

// mazeLike fills an 8x6 grid, skipping the outer columns and the bottom
// row. Each cell holds a ledge with a probability that rises with
// difficulty.
func (b *builder) mazeLike(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	cellW := W / mazeColumns
	cellH := (H - 100) / mazeRows
	chance := 0.4 + float64(d)*0.05
	for row := 1; row < mazeRows; row++ {
		for col := 1; col < mazeColumns-1; col++ {
			if b.r.Float64() >= chance {
				continue
			}
			x := col*cellW + randInt(b.r, 10, cellW-90)
			y := H - 100 - row*cellH
			w := 60 + randInt(b.r, 0, 30)
			out = append(out, b.static(x, y, w))
		}
	}
	return out
}

// timingChallenge splits the world into sections holding one or two low
// ledges each, leaving gaps the player is expected to bridge by drawing.
func (b *builder) timingChallenge(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	sections := 2 + d/2
	sectionW := W / sections
	for i := 0; i < sections; i++ {
		start := i*sectionW + 50
		for j := 0; j < 1+randInt(b.r, 0, 1); j++ {
			x := start + randInt(b.r, 0, sectionW-100)
			y := H - 150 - randInt(b.r, 0, 200)
			w := 60 + randInt(b.r, 0, 40)
			out = append(out, b.static(x, y, w))
		}
	}
	return out
}

// basicPlatforms spaces a row of ledges evenly; the moving and disappearing
// strategies layer their special platforms on top of it.
func (b *builder) basicPlatforms(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	n := 3 + d/2
	sectionW := W / (n + 1)
	for i := 0; i < n; i++ {
		x := (i+1)*sectionW + randInt(b.r, -50, 50)
		y := H - 150 - randInt(b.r, 0, 100)
		w := 80 + randInt(b.r, 0, 40)
		out = append(out, b.static(x, y, w))
	}
	return out
}

func (b *builder) movingPlatforms(d int) []*world.Platform {
	W, H := b.dims()
	spec := b.g.platforms
	var out []*world.Platform

	for i := 0; i < 2+d/3; i++ {
		center := 200 + randInt(b.r, 0, W-400)
		y := H - 200 - randInt(b.r, 0, 200)
		span := 100 + randInt(b.r, 0, 150)

		startX := max(50, center-span/2)
		endX := min(W-150, center+span/2)
		speed := spec.MovingSpeed + b.r.Float64()

		out = append(out, world.NewMoving(float64(y), spec.MovingWidth, spec.Thickness, float64(startX), float64(endX), speed))
	}
	return out
}

// spikeSafeZones places one raised ledge per section for the player to
// hop between over the spikes.
func (b *builder) spikeSafeZones(d int) []*world.Platform {
	W, H := b.dims()
	var out []*world.Platform

	zones := 3 + d/2
	sectionW := W / zones
	for i := 0; i < zones; i++ {
		x := i*sectionW + randInt(b.r, 20, sectionW-120)
		y := H - 200 - randInt(b.r, 0, 100)
		w := 80 + randInt(b.r, 0, 40)
		out = append(out, b.static(x, y, w))
	}
	return out
}

// spikes lines the floor with spike strips and, past difficulty 3, adds
// short elevated strips.
func (b *builder) spikes(d int) []*world.Spike {
	W, H := b.dims()
	sh := b.g.spec.SpikeHeight
	var out []*world.Spike

	stripW := 60 + randInt(b.r, 0, 40)
	for i := 0; i < 2+d/2; i++ {
		x := 250 + i*200 + randInt(b.r, -50, 50)
		if x+stripW < W-100 {
			out = append(out, world.NewSpike(common.NewRect(float64(x), float64(H-70), float64(stripW), sh)))
		}
	}

	if d > 3 {
		for i := 0; i < d/3; i++ {
			x := randInt(b.r, 100, W-150)
			y := H - 150 - randInt(b.r, 0, 100)
			out = append(out, world.NewSpike(common.NewRect(float64(x), float64(y), 40, sh)))
		}
	}
	return out
}

func (b *builder) disappearingPlatforms(d int) []*world.Platform {
	_, H := b.dims()
	spec := b.g.platforms
	var out []*world.Platform

	delay := max(spec.MinTriggerDelayMS, spec.TriggerDelayMS-int64(d)*spec.TriggerDelayStepMS)
	for i := 0; i < 2+d/3; i++ {
		x := 300 + i*200 + randInt(b.r, -50, 50)
		y := H - 200 - randInt(b.r, 0, 150)
		w := 80 + randInt(b.r, 0, 40)
		hidden := spec.DisappearMS + int64(randInt(b.r, 0, int(spec.DisappearJitterMS)))

		r := common.NewRect(float64(x), float64(y), float64(w), spec.Thickness)
		out = append(out, world.NewDisappearing(r, delay, hidden))
	}
	return out
}
