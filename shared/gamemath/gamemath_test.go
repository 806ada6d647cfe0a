package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, WrapAngle(tc.in), 1e-9, "WrapAngle(%v)", tc.in)
	}
}

func TestRotateTowardTakesShortWay(t *testing.T) {
	// From 170deg to -170deg is a 20deg turn through Pi, not 340deg back.
	from := DegToRad(170)
	to := DegToRad(-170)

	got := RotateToward(from, to, DegToRad(5))
	assert.InDelta(t, DegToRad(175), got, 1e-9)

	got = RotateToward(from, to, DegToRad(30))
	assert.InDelta(t, to, got, 1e-9)
}

func TestRotateTowardStaysInRange(t *testing.T) {
	yaw := 0.0
	for i := 0; i < 200; i++ {
		yaw = RotateToward(yaw, yaw+1, 0.3)
		assert.True(t, yaw > -math.Pi && yaw <= math.Pi, "yaw %v out of range", yaw)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.Equal(t, Vec3{}, Vec3{X: 1e-6}.SetLength(5))

	n := Vec3{X: 3, Z: 4}.Normalize()
	assert.InDelta(t, 1, n.Len(), 1e-12)
}

func TestNormalizeZeroIsNotNaN(t *testing.T) {
	// mgl64 divides by the raw length.
	raw := mgl64.Vec3{}.Normalize()
	assert.True(t, math.IsNaN(raw[0]))

	assert.True(t, Vec3{}.Normalize().IsFinite())
	assert.Equal(t, Vec3{}, Vec3{}.SetLength(3))
}

func TestMglRoundTrip(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, mgl64.Vec3{1, -2, 3}, v.Mgl())
	assert.Equal(t, v, FromMgl(v.Mgl()))
	assert.InDelta(t, 14, v.LenSq(), 1e-12)
}

func TestMoveTowardLimitsStep(t *testing.T) {
	v := Vec3{X: 6, Z: 8}.MoveToward(Vec3{}, 5)
	assert.InDelta(t, 5, v.Len(), 1e-12)
	assert.InDelta(t, 3, v.X, 1e-12)
}

func TestMoveToward(t *testing.T) {
	v := Vec3{}.MoveToward(Vec3{X: 10}, 3)
	assert.InDelta(t, 3, v.X, 1e-12)

	v = Vec3{X: 9}.MoveToward(Vec3{X: 10}, 3)
	assert.Equal(t, Vec3{X: 10}, v)
}

func TestCameraRelative(t *testing.T) {
	d := CameraRelative(1, 0, 0)
	assert.InDelta(t, 1, d.X, 1e-12)
	assert.InDelta(t, 0, d.Z, 1e-12)

	// Stick forward with the camera turned to face +X moves along +X.
	d = CameraRelative(0, 1, math.Pi/2)
	assert.InDelta(t, 1, d.X, 1e-12)
	assert.InDelta(t, 0, d.Z, 1e-12)

	assert.InDelta(t, math.Pi/2, HeadingYaw(d), 1e-12)
	assert.InDelta(t, 1, YawToDir(HeadingYaw(d)).X, 1e-12)
}

func TestSmoothingFactor(t *testing.T) {
	assert.InDelta(t, 1-math.Exp(-0.1/0.06), SmoothingFactor(0.1, 0.06), 1e-12)
	assert.Equal(t, 1.0, SmoothingFactor(0.1, 0))
}

func TestSlope(t *testing.T) {
	assert.InDelta(t, 0, SlopeAngle(Up), 1e-12)
	assert.InDelta(t, 0, SlopeAngle(Vec3{}), 1e-12)

	// Ground rising along +X: y = x. Normal leans toward -X, downhill.
	n := Vec3{X: -1, Y: 1}.Normalize()
	assert.InDelta(t, math.Pi/4, SlopeAngle(n), 1e-12)
	assert.InDelta(t, -1, Downhill(n).X, 1e-12)
	assert.Equal(t, Vec3{}, Downhill(Up))
}

func TestJumpSpeed(t *testing.T) {
	assert.Equal(t, 12.0, JumpSpeed(12, 1, 1.25))
	assert.Equal(t, 12.0, JumpSpeed(12, 2, 1.25))
	assert.Equal(t, 15.0, JumpSpeed(12, 3, 1.25))
}

func TestApplyFrictionKeepsVertical(t *testing.T) {
	v := ApplyFriction(Vec3{X: 2, Y: -4}, 5)
	assert.Equal(t, Vec3{Y: -4}, v)
}
