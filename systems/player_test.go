package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jump presses jump, records the launch speed and waits for the landing.
func (tw *testWorld) jump(t *testing.T, hold bool) float64 {
	t.Helper()
	tw.input(components.Intents{JumpPressed: true, JumpHeld: hold}, tick)
	tw.step(1, tick)
	launch := tw.kin().Velocity.Y
	for i := 0; i < 300 && !tw.kin().OnGround; i++ {
		tw.step(1, tick)
	}
	require.True(t, tw.kin().OnGround, "actor never landed")
	return launch
}

func TestSettlesOnGround(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	assert.True(t, tw.kin().OnGround)
	assert.InDelta(t, cfg.Physics.SnapEpsilon, tw.pos().Y, 1e-9)
	assert.Zero(t, tw.kin().Velocity.Y)
	assert.Equal(t, cfg.Idle, tw.motion().State(tw.kin()))
}

func TestNoGroundLeavesActorAirborne(t *testing.T) {
	tw := newTestWorldWithGround(t, nil)
	tw.step(10, tick)

	assert.False(t, tw.kin().OnGround)
	assert.Less(t, tw.kin().Velocity.Y, 0.0)
	assert.Equal(t, cfg.Airborne, tw.motion().State(tw.kin()))
}

func TestMotionStaysFinite(t *testing.T) {
	tw := newTestWorld(t,
		collision.Patch{Name: "floor", MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50},
		collision.Patch{Name: "ramp", MinX: 0, MinZ: 0, MaxX: 10, MaxZ: 10, GradX: 1.5},
	)
	rng := rand.New(rand.NewSource(7))
	dts := []float64{0, -1, math.NaN(), math.Inf(1), 1e-12, 5, tick}

	for i := 0; i < 2000; i++ {
		in := components.Intents{
			MoveX:          rng.Float64()*4 - 2,
			MoveZ:          rng.Float64()*4 - 2,
			JumpPressed:    rng.Intn(8) == 0,
			JumpHeld:       rng.Intn(2) == 0,
			SpecialPressed: rng.Intn(20) == 0,
			AttackPressed:  rng.Intn(10) == 0,
		}
		if i%97 == 0 {
			in.MoveX = math.NaN()
		}
		dt := rng.Float64() * 0.2
		if i%5 == 0 {
			dt = dts[rng.Intn(len(dts))]
		}
		SetInput(tw.actor, in, rng.Float64()*10-5, dt)
		StepMotion(tw.actor, tw.ground, dt)

		require.True(t, tw.pos().IsFinite(), "position at step %d", i)
		require.True(t, tw.kin().Velocity.IsFinite(), "velocity at step %d", i)
		yaw := components.Transform.Get(tw.actor).Yaw
		require.False(t, math.IsNaN(yaw))
		require.LessOrEqual(t, yaw, math.Pi)
		require.Greater(t, yaw, -math.Pi)
	}
}

func TestJumpBufferedBeforeLanding(t *testing.T) {
	tw := newTestWorld(t)
	components.Transform.Get(tw.actor).Position.Y = 0.3
	tw.kin().Velocity.Y = -3

	tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)

	jumped := false
	for i := 1; i <= 10; i++ {
		tw.step(1, tick)
		if tw.kin().Velocity.Y > 0 {
			assert.LessOrEqual(t, float64(i)*tick, cfg.Jump.BufferTime)
			assert.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)
			jumped = true
			break
		}
	}
	assert.True(t, jumped, "buffered jump never fired")
}

func TestJumpBufferExpires(t *testing.T) {
	tw := newTestWorld(t)
	components.Transform.Get(tw.actor).Position.Y = 1

	tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
	for i := 0; i < 60; i++ {
		tw.step(1, tick)
		require.LessOrEqual(t, tw.kin().Velocity.Y, 0.0, "tick %d", i)
	}
	assert.True(t, tw.kin().OnGround)
}

func TestCoyoteJump(t *testing.T) {
	ground := &switchableGround{solid: true}

	t.Run("within window", func(t *testing.T) {
		ground.solid = true
		tw := newTestWorldWithGround(t, ground)
		tw.settle()
		ground.solid = false
		tw.step(1, tick)
		require.False(t, tw.kin().OnGround)

		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
		tw.step(1, tick)
		assert.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)
	})

	t.Run("too late", func(t *testing.T) {
		ground.solid = true
		tw := newTestWorldWithGround(t, ground)
		tw.settle()
		ground.solid = false
		tw.step(10, tick)

		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
		tw.step(1, tick)
		assert.Less(t, tw.kin().Velocity.Y, 0.0)
	})

	t.Run("not after a real jump", func(t *testing.T) {
		ground.solid = true
		tw := newTestWorldWithGround(t, ground)
		tw.settle()
		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
		tw.step(1, tick)
		require.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)

		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
		tw.step(1, tick)
		assert.Less(t, tw.kin().Velocity.Y, cfg.Jump.Speed)
	})
}

func TestTripleJumpBoost(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	speeds := []float64{tw.jump(t, true), tw.jump(t, true), tw.jump(t, true), tw.jump(t, true)}
	base := cfg.Jump.Speed
	assert.Equal(t, []float64{base, base, base * cfg.Jump.TripleBoost, base}, speeds)
}

func TestJumpChainResets(t *testing.T) {
	cases := []struct {
		name string
		wait int
	}{
		{"landing gap", 25},  // past the chain window, under the grounded reset
		{"grounded idle", 40}, // past the grounded reset
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.settle()
			tw.jump(t, true)
			tw.jump(t, true)

			tw.step(tc.wait, tick)
			assert.Equal(t, cfg.Jump.Speed, tw.jump(t, true))
		})
	}
}

func TestVariableJumpHeight(t *testing.T) {
	gravityTick := cfg.Physics.Gravity * tick

	t.Run("release while rising cuts", func(t *testing.T) {
		tw := newTestWorld(t)
		tw.settle()
		tw.input(components.Intents{JumpPressed: true}, tick)
		tw.step(1, tick)
		require.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)

		tw.step(1, tick)
		want := (cfg.Jump.Speed - gravityTick) * cfg.Jump.ReleaseCut
		assert.InDelta(t, want, tw.kin().Velocity.Y, 1e-9)
	})

	t.Run("held keeps speed", func(t *testing.T) {
		tw := newTestWorld(t)
		tw.settle()
		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, tick)
		tw.step(2, tick)
		assert.InDelta(t, cfg.Jump.Speed-gravityTick, tw.kin().Velocity.Y, 1e-9)
	})

	t.Run("no effect while descending", func(t *testing.T) {
		tw := newTestWorld(t)
		components.Transform.Get(tw.actor).Position.Y = 5
		tw.kin().Velocity.Y = -2
		tw.step(1, tick)
		assert.InDelta(t, -2-gravityTick, tw.kin().Velocity.Y, 1e-9)
	})

	t.Run("no effect while grounded", func(t *testing.T) {
		tw := newTestWorld(t)
		tw.settle()
		tw.step(1, tick)
		assert.Zero(t, tw.kin().Velocity.Y)
	})
}

func TestAccelerationApproachesMaxSpeed(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()
	require.Zero(t, tw.kin().Velocity.HorizontalLen())
	y := tw.pos().Y

	maxSpeed := cfg.Player.MaxSpeed * components.Modifiers.Get(tw.actor).Speed
	prev := 0.0
	for i := 0; i < 30; i++ {
		tw.input(components.Intents{MoveX: 1}, 0.1)
		tw.step(1, 0.1)

		speed := tw.kin().Velocity.HorizontalLen()
		require.LessOrEqual(t, speed, maxSpeed+1e-9, "tick %d", i)
		require.GreaterOrEqual(t, speed, prev-1e-9, "tick %d", i)
		require.Zero(t, tw.kin().Velocity.Y, "tick %d", i)
		require.InDelta(t, y, tw.pos().Y, 1e-9, "tick %d", i)
		prev = speed
	}
	assert.InDelta(t, maxSpeed, prev, 1e-6)
	assert.InDelta(t, 0, tw.kin().Velocity.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, components.Transform.Get(tw.actor).Yaw, 1e-9)
	assert.Equal(t, cfg.Moving, tw.motion().State(tw.kin()))
}

func TestFrictionStopsActor(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()
	tw.kin().Velocity = gamemath.Vec3{X: 5}

	tw.input(components.Intents{}, tick)
	tw.step(30, tick)
	assert.Zero(t, tw.kin().Velocity.HorizontalLen())
}

func TestMoveIsCameraRelative(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	for i := 0; i < 20; i++ {
		SetInput(tw.actor, components.Intents{MoveZ: 1}, math.Pi/2, tick)
		tw.step(1, tick)
	}
	v := tw.kin().Velocity
	assert.Greater(t, v.X, 1.0)
	assert.InDelta(t, 0, v.Z, 1e-6)
}

func TestAirControlIsWeaker(t *testing.T) {
	tw := newTestWorld(t)
	components.Transform.Get(tw.actor).Position.Y = 200

	for i := 0; i < 120; i++ {
		tw.input(components.Intents{MoveX: 1}, tick)
		tw.step(1, tick)
	}
	require.False(t, tw.kin().OnGround)
	assert.InDelta(t, cfg.Player.MaxSpeed*cfg.Player.AirSpeedRatio, tw.kin().Velocity.HorizontalLen(), 1e-6)
}

func TestSteepSlopeSlides(t *testing.T) {
	// 45 degrees, rising toward +X, surface at y=0 under the origin
	tw := newTestWorld(t, collision.Patch{Name: "ramp", MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50, Height: -50, GradX: 1})
	tw.step(1, tick)
	require.True(t, tw.kin().OnGround)

	prev := 0.0
	for i := 0; i < 10; i++ {
		tw.input(components.Intents{MoveX: 1}, tick)
		tw.step(1, tick)
		require.True(t, tw.kin().OnGround, "tick %d", i)
		assert.Less(t, tw.kin().Velocity.X, prev)
		prev = tw.kin().Velocity.X
	}
}

func TestGentleSlopeHolds(t *testing.T) {
	tw := newTestWorld(t, collision.Patch{Name: "ramp", MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50, Height: -25, GradX: 0.5})
	tw.step(30, tick)

	assert.True(t, tw.kin().OnGround)
	assert.Zero(t, tw.kin().Velocity.HorizontalLen())
}

func TestBash(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()
	tw.kin().Velocity = gamemath.Vec3{Z: 3}

	tw.input(components.Intents{JumpPressed: true, SpecialPressed: true}, tick)
	m := tw.motion()
	require.True(t, m.Bashing)
	assert.False(t, m.Backflipping)
	assert.Equal(t, components.LongAgo, m.SinceJumpPress)
	assert.InDelta(t, cfg.Player.BashSpeed, tw.kin().Velocity.Z, 1e-9)

	tw.step(1, tick)
	assert.LessOrEqual(t, tw.kin().Velocity.Y, 0.0, "the consumed press must not jump")
	assert.InDelta(t, cfg.Player.BashSpeed, tw.kin().Velocity.Z, 1e-9, "input does not steer a bash")

	offer, ok := SpecialHitbox(tw.actor)
	require.True(t, ok)
	assert.Equal(t, cfg.AttackBash, offer.Kind)
	assert.Equal(t, cfg.Combat.Bash.Knockback, offer.Knockback)

	tw.step(int(cfg.Player.BashDuration/tick)+2, tick)
	assert.False(t, tw.motion().Bashing)
	_, ok = SpecialHitbox(tw.actor)
	assert.False(t, ok)
}

func TestBackflip(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	tw.input(components.Intents{JumpPressed: true, SpecialPressed: true}, tick)
	require.True(t, tw.motion().Backflipping)
	assert.Equal(t, cfg.Backflipping, tw.motion().State(tw.kin()))
	assert.InDelta(t, -cfg.Player.BackflipSpeed, tw.kin().Velocity.Z, 1e-9)

	// Jump is not held, but the backflip keeps its lift
	tw.step(1, tick)
	assert.False(t, tw.kin().OnGround)
	assert.InDelta(t, cfg.Player.BackflipLift-cfg.Physics.Gravity*tick, tw.kin().Velocity.Y, 1e-9)
	_, ok := SpecialHitbox(tw.actor)
	assert.False(t, ok)
}

func TestSpecialNeedsJumpPress(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	tw.input(components.Intents{SpecialPressed: true}, tick)
	assert.False(t, tw.motion().Locked())
}

func TestGroundPound(t *testing.T) {
	tw := newTestWorld(t)
	components.Transform.Get(tw.actor).Position.Y = 3
	tw.kin().Velocity = gamemath.Vec3{X: 2, Y: 1}

	tw.input(components.Intents{SpecialPressed: true}, tick)
	m := tw.motion()
	require.True(t, m.GroundPounding)
	assert.Equal(t, gamemath.Vec3{Y: cfg.Player.GroundPoundSpeed}, tw.kin().Velocity)

	for i := 0; i < 60 && !tw.kin().OnGround; i++ {
		tw.input(components.Intents{MoveX: 1}, tick)
		tw.step(1, tick)
		if !tw.kin().OnGround {
			require.Zero(t, tw.kin().Velocity.X, "no air control while pounding")
		}
	}
	require.True(t, tw.kin().OnGround)
	assert.False(t, m.GroundPounding)
	assert.Equal(t, uint32(1), m.Serials[cfg.AttackPound])

	offer, ok := SpecialHitbox(tw.actor)
	require.True(t, ok)
	assert.Equal(t, cfg.AttackPound, offer.Kind)
	assert.True(t, offer.Flat)

	tw.step(int(cfg.Player.PoundImpactWindow/tick)+2, tick)
	_, ok = SpecialHitbox(tw.actor)
	assert.False(t, ok)
}

func TestAttackWindow(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	tw.input(components.Intents{AttackPressed: true}, tick)
	m := tw.motion()
	require.True(t, m.Attacking)
	assert.Equal(t, cfg.Combat.AttackCooldown, m.AttackCooldown)
	assert.Equal(t, uint32(1), m.Serials[cfg.AttackSwing])

	tw.input(components.Intents{AttackPressed: true}, tick)
	assert.Equal(t, uint32(1), m.Serials[cfg.AttackSwing], "cooldown blocks a second swing")

	tw.step(10, tick)
	offer, ok := AttackHitbox(tw.actor)
	require.True(t, ok)
	assert.Equal(t, cfg.AttackSwing, offer.Kind)
	assert.Zero(t, offer.Knockback)

	tw.step(4, tick)
	_, ok = AttackHitbox(tw.actor)
	assert.False(t, ok)

	tw.step(30, tick)
	assert.False(t, m.Attacking)
	assert.Zero(t, m.AttackCooldown)
}

func TestSanitizeDt(t *testing.T) {
	_, ok := sanitizeDt(math.NaN())
	assert.False(t, ok)
	_, ok = sanitizeDt(0)
	assert.False(t, ok)
	_, ok = sanitizeDt(-1)
	assert.False(t, ok)

	dt, ok := sanitizeDt(10)
	assert.True(t, ok)
	assert.Equal(t, cfg.Physics.MaxDt, dt)

	dt, ok = sanitizeDt(math.Inf(1))
	assert.True(t, ok)
	assert.Equal(t, cfg.Physics.MaxDt, dt)
}

func TestLandsAtMaxDt(t *testing.T) {
	dt := cfg.Physics.MaxDt

	t.Run("jump", func(t *testing.T) {
		tw := newTestWorld(t)
		tw.settle()
		tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, dt)
		tw.step(1, dt)
		require.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)

		for i := 0; i < 100 && !tw.kin().OnGround; i++ {
			tw.step(1, dt)
		}
		require.True(t, tw.kin().OnGround, "actor fell through the floor")
		assert.InDelta(t, cfg.Physics.SnapEpsilon, tw.pos().Y, 1e-9)
	})

	t.Run("fall from height", func(t *testing.T) {
		ground := &switchableGround{solid: true}
		tw := newTestWorldWithGround(t, ground)
		components.Transform.Get(tw.actor).Position.Y = 2

		for i := 0; i < 100 && !tw.kin().OnGround; i++ {
			tw.step(1, dt)
			require.Greater(t, tw.pos().Y, -2.0, "tick %d", i)
		}
		require.True(t, tw.kin().OnGround)
		assert.InDelta(t, cfg.Physics.SnapEpsilon, tw.pos().Y, 1e-9)
		assert.Zero(t, tw.kin().Velocity.Y)

		tw.step(10, dt)
		assert.True(t, tw.kin().OnGround)
		assert.InDelta(t, cfg.Physics.SnapEpsilon, tw.pos().Y, 1e-9)
	})
}

// fixedHit reports ground at a fixed ray distance, whatever the origin.
func fixedHit(distance float64) collision.ProviderFunc {
	return func(origin, _ gamemath.Vec3) []collision.Hit {
		return []collision.Hit{{
			Distance: distance,
			Point:    gamemath.Vec3{X: origin.X, Y: origin.Y - distance, Z: origin.Z},
			Normal:   gamemath.Up,
		}}
	}
}

func TestGroundContactDistanceIsExclusive(t *testing.T) {
	cases := []struct {
		distance float64
		contact  bool
	}{
		{0.649, true},
		{cfg.Physics.GroundDistance, false},
		{0.7, false},
	}
	for _, tc := range cases {
		tw := newTestWorldWithGround(t, fixedHit(tc.distance))
		tw.step(1, tick)
		assert.Equal(t, tc.contact, tw.kin().OnGround, "distance %v", tc.distance)
	}
}

func TestStepUpSnap(t *testing.T) {
	cases := []struct {
		name   string
		stepUp float64
		snaps  bool
	}{
		{"low step", 0.3, true},
		{"just under", 0.449, true},
		{"at step height", cfg.Physics.StepHeight, false},
		{"above step height", 0.48, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top := tc.stepUp
			ground := collision.ProviderFunc(func(origin, _ gamemath.Vec3) []collision.Hit {
				return []collision.Hit{{
					Distance: origin.Y - top,
					Point:    gamemath.Vec3{X: origin.X, Y: top, Z: origin.Z},
					Normal:   gamemath.Up,
				}}
			})
			tw := newTestWorldWithGround(t, ground)
			tw.step(1, tick)

			require.True(t, tw.kin().OnGround)
			if tc.snaps {
				assert.InDelta(t, top+cfg.Physics.SnapEpsilon, tw.pos().Y, 1e-9)
			} else {
				assert.Zero(t, tw.pos().Y)
			}
		})
	}
}

func TestTurnRateIsLimited(t *testing.T) {
	cases := []struct {
		dt    float64
		ticks int
	}{
		{tick, 1},
		{tick, 5},
		{0.05, 1},
		{cfg.Physics.MaxDt, 1},
	}
	maxStep := gamemath.DegToRad(cfg.Player.TurnRateDeg)
	for _, tc := range cases {
		tw := newTestWorld(t)
		tw.settle()
		tw.kin().Velocity = gamemath.Vec3{X: -cfg.Player.MaxSpeed}

		prev := components.Transform.Get(tw.actor).Yaw
		for i := 0; i < tc.ticks; i++ {
			tw.input(components.Intents{MoveX: -1}, tc.dt)
			tw.step(1, tc.dt)
			yaw := components.Transform.Get(tw.actor).Yaw
			assert.InDelta(t, maxStep*tc.dt, math.Abs(gamemath.AngleDelta(prev, yaw)), 1e-9,
				"dt %v tick %d", tc.dt, i)
			prev = yaw
		}
	}
}

func TestGroundPoundCancelsBackflip(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	tw.input(components.Intents{JumpPressed: true, SpecialPressed: true}, tick)
	tw.step(2, tick)
	m := tw.motion()
	require.True(t, m.Backflipping)
	require.False(t, tw.kin().OnGround)
	require.Greater(t, m.ActionTimer, 0.0)

	tw.input(components.Intents{SpecialPressed: true}, tick)
	assert.True(t, m.GroundPounding)
	assert.False(t, m.Backflipping)
	assert.False(t, m.Locked())
	assert.Zero(t, m.ActionTimer)
	assert.Equal(t, gamemath.Vec3{Y: cfg.Player.GroundPoundSpeed}, tw.kin().Velocity)
	assert.Equal(t, cfg.GroundPounding, m.State(tw.kin()))
}

func TestZeroDtStillLatchesPresses(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle()

	tw.input(components.Intents{MoveX: 1, JumpPressed: true, SpecialPressed: true, AttackPressed: true}, 0)
	m := tw.motion()
	assert.True(t, m.Backflipping, "special consumed the jump press")
	assert.True(t, m.Attacking)
	assert.Equal(t, uint32(1), m.Serials[cfg.AttackSwing])
	assert.Zero(t, components.Input.Get(tw.actor).Smoothed.X, "stick filter needs a real step")

	tw = newTestWorld(t)
	tw.settle()
	tw.input(components.Intents{JumpPressed: true, JumpHeld: true}, math.NaN())
	assert.Zero(t, tw.motion().SinceJumpPress)
	tw.step(1, tick)
	assert.Equal(t, cfg.Jump.Speed, tw.kin().Velocity.Y)
}
