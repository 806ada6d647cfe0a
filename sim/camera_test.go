package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrbitCameraTurn(t *testing.T) {
	c := &OrbitCamera{RateDeg: 90}
	c.Turn(1, 1)
	assert.InDelta(t, math.Pi/2, c.CurrentYaw(), 1e-9)

	c.Turn(-1, 0.5)
	assert.InDelta(t, math.Pi/4, c.CurrentYaw(), 1e-9)

	// Past half a turn it wraps into (-Pi, Pi]
	c.Turn(1, 3)
	assert.InDelta(t, -math.Pi/4, c.CurrentYaw(), 1e-9)
}

func TestOrbitCameraIgnoresBadInput(t *testing.T) {
	c := &OrbitCamera{Yaw: 0.3}
	c.Turn(0, 1)
	c.Turn(1, 0)
	c.Turn(1, -1)
	c.Turn(1, math.NaN())
	c.Turn(1, math.Inf(1))
	assert.Equal(t, 0.3, c.CurrentYaw())
}

func TestOrbitCameraDefaultRate(t *testing.T) {
	c := &OrbitCamera{}
	c.Turn(1, 0.5)
	assert.InDelta(t, math.Pi/3, c.CurrentYaw(), 1e-9) // 120 deg/s
}
