package gamemath

import "math"

// WrapAngle normalizes a radian angle into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleDelta returns the shortest signed rotation from -> to.
func AngleDelta(from, to float64) float64 {
	return WrapAngle(to - from)
}

// RotateToward turns current toward target by at most maxStep radians,
// taking the short way around.
func RotateToward(current, target, maxStep float64) float64 {
	d := AngleDelta(current, target)
	if math.Abs(d) <= maxStep {
		return WrapAngle(target)
	}
	return WrapAngle(current + math.Copysign(maxStep, d))
}

// SmoothingFactor is the per-step blend of a first-order low-pass filter
// with time constant tau: 1 - e^(-dt/tau).
func SmoothingFactor(dt, tau float64) float64 {
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/tau)
}

// YawToDir returns the unit heading for a yaw. Yaw 0 faces +Z.
func YawToDir(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// HeadingYaw is the inverse of YawToDir for the horizontal part of v.
func HeadingYaw(v Vec3) float64 {
	return math.Atan2(v.X, v.Z)
}

// CameraRelative rotates a stick vector (x right, z forward) by the camera
// yaw into a horizontal world direction.
func CameraRelative(x, z, cameraYaw float64) Vec3 {
	sin, cos := math.Sincos(cameraYaw)
	return Vec3{
		X: x*cos + z*sin,
		Z: -x*sin + z*cos,
	}
}

// ClampUnit2 caps a 2-axis stick vector at unit length.
func ClampUnit2(x, z float64) (float64, float64) {
	l2 := x*x + z*z
	if l2 <= 1 {
		return x, z
	}
	l := math.Sqrt(l2)
	return x / l, z / l
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
