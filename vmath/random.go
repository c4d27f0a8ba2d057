package vmath

import "math"

// Source is the uniform random source used by spawn helpers
// *rand.Rand from math/rand satisfies it
type Source interface {
	Float64() float64
}

// RandomPosition returns a point uniformly distributed in [0, w-extent] x [0, h-extent]
// Degenerate viewports collapse to the origin on that axis
func RandomPosition(src Source, w, h, extent float64) Vec2 {
	return Vec2{
		X: src.Float64() * math.Max(0, w-extent),
		Y: src.Float64() * math.Max(0, h-extent),
	}
}

// RandomDirection returns a uniformly distributed unit vector
func RandomDirection(src Source) Vec2 {
	angle := src.Float64() * 2 * math.Pi
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// RandomSpeed jitters base by ±variance (fraction of base)
func RandomSpeed(src Source, base, variance float64) float64 {
	return base * (1 + (src.Float64()-0.5)*variance*2)
}

// RandomRange returns a value uniformly distributed in [lo, hi)
func RandomRange(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
