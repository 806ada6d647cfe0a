package gamemath

import "math"

// SlopeAngle is the angle in radians between a surface normal and world up.
// A degenerate normal counts as flat ground.
func SlopeAngle(normal Vec3) float64 {
	n := normal.Normalize()
	if n.LenSq() < Epsilon {
		return 0
	}
	return math.Acos(math.Max(-1, math.Min(1, n.Y)))
}

// Downhill returns the horizontal unit direction a body slides on a surface
// with the given normal, or zero on flat ground.
func Downhill(normal Vec3) Vec3 {
	return normal.Horizontal().Normalize()
}
