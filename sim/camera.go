package sim

import (
	"math"

	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
)

// OrbitCamera is a camera that circles the actor at a fixed turn rate.
type OrbitCamera struct {
	Yaw     float64
	RateDeg float64 // degrees per second; zero uses the configured rate
}

func (c *OrbitCamera) CurrentYaw() float64 { return c.Yaw }

// Turn orbits by dir (-1 left, 1 right) for dt seconds.
func (c *OrbitCamera) Turn(dir, dt float64) {
	if dir == 0 || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	rate := c.RateDeg
	if rate <= 0 {
		rate = cfg.Input.CameraTurnRateDeg
	}
	dir = math.Max(-1, math.Min(1, dir))
	c.Yaw = gamemath.WrapAngle(c.Yaw + dir*gamemath.DegToRad(rate)*dt)
}
