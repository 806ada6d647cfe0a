package systems

import (
	"math"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/tags"
	"github.com/yohamta/donburi"
)

// UpdateInput feeds this tick's intents to every actor and handles ability
// switch requests. The camera yaw comes from the level's camera.
func UpdateInput(w donburi.World, in components.Intents, dt float64) {
	yaw := 0.0
	if level, ok := tags.Level.First(w); ok {
		yaw = components.Camera.Get(level).Yaw
	}
	sink := sinkOf(w)

	for _, actor := range actorsOf(w) {
		SetInput(actor, in, yaw, dt)
		if in.Ability != cfg.AbilityNone {
			ActivateAbility(w, actor, in.Ability, sink)
		}
	}
}

// SetInput records one tick of intents on an actor: it low-pass filters the
// move stick, latches jump presses, and starts specials and attacks whose
// preconditions hold. Nothing here fails; unmet preconditions do nothing.
// A dt too short to step still latches button edges; only the stick
// filter waits for a real step.
func SetInput(actor *donburi.Entry, in components.Intents, cameraYaw, dt float64) {
	input := components.Input.Get(actor)
	motion := components.Motion.Get(actor)
	kin := components.Kinematics.Get(actor)
	tr := components.Transform.Get(actor)

	// Move stick, clamped then smoothed
	if dt, ok := sanitizeDt(dt); ok {
		rawX, rawZ := gamemath.ClampUnit2(finiteOr(in.MoveX, 0), finiteOr(in.MoveZ, 0))
		k := gamemath.SmoothingFactor(dt, cfg.Player.InputSmoothing)
		input.Smoothed.X += (rawX - input.Smoothed.X) * k
		input.Smoothed.Y += (rawZ - input.Smoothed.Y) * k
	}

	input.Last = in
	input.JumpHeld = in.JumpHeld
	input.CameraYaw = finiteOr(cameraYaw, input.CameraYaw)

	if in.JumpPressed {
		motion.SinceJumpPress = 0
	}

	if in.SpecialPressed {
		handleSpecialInput(motion, kin, tr)
	}

	if in.AttackPressed && motion.AttackCooldown <= 0 {
		motion.Attacking = true
		motion.AttackCooldown = cfg.Combat.AttackCooldown
		motion.Serials[cfg.AttackSwing]++
	}
}

func handleSpecialInput(motion *components.MotionData, kin *components.KinematicsData, tr *components.TransformData) {
	facing := gamemath.YawToDir(tr.Yaw)

	if kin.OnGround {
		// Grounded specials need a fresh jump press and consume it
		if motion.SinceJumpPress > cfg.Jump.BufferTime || motion.Locked() {
			return
		}
		motion.SinceJumpPress = components.LongAgo

		if kin.Velocity.HorizontalLen() > cfg.Player.BashSpeedThreshold {
			motion.Bashing = true
			motion.Backflipping = false
			motion.ActionTimer = cfg.Player.BashDuration
			motion.Serials[cfg.AttackBash]++
			kin.Velocity = kin.Velocity.WithHorizontal(facing.Scale(cfg.Player.BashSpeed))
			return
		}

		motion.Backflipping = true
		motion.Bashing = false
		motion.ActionTimer = cfg.Player.BackflipDuration
		kin.Velocity = facing.Scale(-cfg.Player.BackflipSpeed)
		kin.Velocity.Y = cfg.Player.BackflipLift
		return
	}

	if motion.GroundPounding {
		return
	}

	// Airborne: ground pound takes over from any other lock
	motion.GroundPounding = true
	motion.Bashing = false
	motion.Backflipping = false
	motion.ActionTimer = 0
	kin.Velocity = gamemath.Vec3{Y: math.Min(kin.Velocity.Y, cfg.Player.GroundPoundSpeed)}
}

// sanitizeDt drops non-finite or tiny steps and clamps long ones.
func sanitizeDt(dt float64) (float64, bool) {
	if math.IsNaN(dt) || dt < cfg.Physics.MinDt {
		return 0, false
	}
	if dt > cfg.Physics.MaxDt {
		dt = cfg.Physics.MaxDt
	}
	return dt, true
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
