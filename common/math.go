package common

import "math"

const (
	// WorldWidth and WorldHeight are the default playfield size in pixels.
	WorldWidth  = 1200
	WorldHeight = 800

	// TPS is the fixed simulation rate.
	TPS = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// HalfFloor returns floor(v/2), the integer midpoint used when centring
// entities over platforms.
func HalfFloor(v float64) float64 {
	return math.Floor(v / 2)
}
