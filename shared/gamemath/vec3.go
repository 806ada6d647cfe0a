package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the squared-length floor below which a vector is treated as
// zero. Every normalize/set-length path checks it before dividing, since
// mgl64 divides by the raw length and yields NaN for a zero vector.
const Epsilon = 1e-9

// Vec3 is a world-space vector. Y is up; the ground plane is XZ.
//
// It keeps named fields so components can assign a single axis in place;
// the algebra itself is mgl64's.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

// FromMgl converts an mgl64 vector.
func FromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// Mgl returns v as an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return FromMgl(v.Mgl().Add(o.Mgl()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return FromMgl(v.Mgl().Sub(o.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return FromMgl(v.Mgl().Mul(s))
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.Mgl().Dot(o.Mgl())
}

func (v Vec3) LenSq() float64 {
	return v.Mgl().LenSqr()
}

func (v Vec3) Len() float64 {
	return v.Mgl().Len()
}

// Normalize returns the unit vector along v, or the zero vector when v is
// shorter than Epsilon.
func (v Vec3) Normalize() Vec3 {
	m := v.Mgl()
	if m.LenSqr() < Epsilon {
		return Vec3{}
	}
	return FromMgl(m.Normalize())
}

// SetLength rescales v to length l. A degenerate v stays zero.
func (v Vec3) SetLength(l float64) Vec3 {
	return v.Normalize().Scale(l)
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// HorizontalLen is the speed on the ground plane.
func (v Vec3) HorizontalLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// WithHorizontal keeps Y and replaces X/Z with h's.
func (v Vec3) WithHorizontal(h Vec3) Vec3 {
	return Vec3{X: h.X, Y: v.Y, Z: h.Z}
}

func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return v.Add(to.Sub(v).Scale(t))
}

// MoveToward steps v toward target by at most maxDelta.
func (v Vec3) MoveToward(target Vec3, maxDelta float64) Vec3 {
	diff := target.Sub(v)
	l2 := diff.LenSq()
	if l2 <= maxDelta*maxDelta || l2 < Epsilon {
		return target
	}
	return v.Add(diff.SetLength(maxDelta))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
