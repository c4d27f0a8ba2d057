package vmath

import "math"

// Vec2 is a 2D vector in logical viewport units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns the opposite vector
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Magnitude returns the euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector of v
// Zero-length input is returned unchanged
func Normalize(v Vec2) Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns the length of b - a
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Magnitude()
}

// ReflectAxisX flips the horizontal component (vertical wall)
func ReflectAxisX(v Vec2) Vec2 { return Vec2{-v.X, v.Y} }

// ReflectAxisY flips the vertical component (horizontal wall)
func ReflectAxisY(v Vec2) Vec2 { return Vec2{v.X, -v.Y} }

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// HeadingDegrees returns the angle of v in degrees, [0, 360)
func HeadingDegrees(v Vec2) float64 {
	return WrapDegrees(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

// WrapDegrees normalizes an angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
