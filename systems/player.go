package systems

import (
	"math"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/tags"
	"github.com/yohamta/donburi"
)

// UpdateMotion advances every actor against the level's ground.
func UpdateMotion(w donburi.World, dt float64) {
	ground := groundOf(w)
	tags.Actor.Each(w, func(actor *donburi.Entry) {
		StepMotion(actor, ground, dt)
	})
}

// StepMotion advances one actor by dt: timers, gravity, ground contact,
// jumps, horizontal control, integration and facing, in that order. A nil
// ground or a ray miss leaves the actor airborne.
func StepMotion(actor *donburi.Entry, ground collision.Provider, dt float64) {
	dt, ok := sanitizeDt(dt)
	if !ok {
		return
	}

	motion := components.Motion.Get(actor)
	kin := components.Kinematics.Get(actor)
	tr := components.Transform.Get(actor)
	input := components.Input.Get(actor)
	mods := components.Modifiers.Get(actor)

	advanceMotionTimers(motion, dt)

	// Gravity applies every tick, grounded or not
	kin.Velocity.Y -= cfg.Physics.Gravity * dt

	updateGroundContact(motion, kin, tr, ground, dt)

	if kin.OnGround && motion.GroundedFor >= cfg.Jump.ChainResetGrounded {
		motion.JumpChain = 0
	}

	// Early release cuts the rise
	if !kin.OnGround && kin.Velocity.Y > 0 && !input.JumpHeld && !motion.Backflipping {
		kin.Velocity.Y *= cfg.Jump.ReleaseCut
	}

	tryJump(motion, kin)

	updateHorizontal(motion, kin, input, mods, dt)

	tr.Position = tr.Position.Add(kin.Velocity.Scale(dt))
	kin.Drop = math.Max(0, -kin.Velocity.Y*dt)

	updateFacing(motion, kin, tr, dt)
}

func advanceMotionTimers(m *components.MotionData, dt float64) {
	m.AttackCooldown -= dt
	m.ActionTimer -= dt
	m.PoundImpactTimer -= dt
	m.SinceJump += dt
	m.SinceJumpPress += dt
	m.SinceUngrounded += dt
	m.SinceLanding += dt

	if m.ActionTimer <= 0 {
		m.ActionTimer = 0
		m.Bashing = false
		m.Backflipping = false
	}
	if m.AttackCooldown <= 0 {
		m.AttackCooldown = 0
		m.Attacking = false
	}
	if m.PoundImpactTimer < 0 {
		m.PoundImpactTimer = 0
	}
}

func updateGroundContact(m *components.MotionData, kin *components.KinematicsData, tr *components.TransformData, ground collision.Provider, dt float64) {
	wasGrounded := kin.OnGround
	hit, found := castGround(ground, tr.Position, kin.Drop)

	// Rising bodies never stick to the ground
	if !found || kin.Velocity.Y > 0 {
		kin.OnGround = false
		kin.GroundNormal = gamemath.Up
		m.GroundedFor = 0
		if wasGrounded {
			m.SinceUngrounded = 0
		}
		return
	}

	kin.OnGround = true
	kin.GroundNormal = hit.Normal
	m.SinceUngrounded = 0

	// A floor crossed during the last move always lands the body on top
	if stepUp := hit.Point.Y - tr.Position.Y; stepUp < cfg.Physics.StepHeight || stepUp <= kin.Drop {
		tr.Position.Y = hit.Point.Y + cfg.Physics.SnapEpsilon
	}
	if kin.Velocity.Y < 0 {
		kin.Velocity.Y = 0
	}

	if wasGrounded {
		m.GroundedFor += dt
		return
	}

	// Landing
	m.SinceLanding = 0
	m.GroundedFor = 0
	if m.GroundPounding {
		m.GroundPounding = false
		m.PoundImpactTimer = cfg.Player.PoundImpactWindow
		m.Serials[cfg.AttackPound]++
	}
}

// castGround casts one ray down from just above the feet and reports the
// nearest hit if it is close enough to count as contact. drop raises the
// origin by the distance fallen last step; contact is still measured from
// the feet.
func castGround(ground collision.Provider, feet gamemath.Vec3, drop float64) (collision.Hit, bool) {
	if ground == nil {
		return collision.Hit{}, false
	}
	origin := feet.Add(gamemath.Vec3{Y: cfg.Physics.RayLift + drop})
	hits := ground.CastDown(origin, gamemath.Vec3{Y: -1})
	if len(hits) == 0 || hits[0].Distance-drop >= cfg.Physics.GroundDistance {
		return collision.Hit{}, false
	}
	return hits[0], true
}

func tryJump(m *components.MotionData, kin *components.KinematicsData) {
	canLeaveGround := kin.OnGround || m.SinceUngrounded <= cfg.Jump.CoyoteTime
	if !canLeaveGround || m.SinceJumpPress > cfg.Jump.BufferTime {
		return
	}
	if m.Locked() || m.GroundPounding {
		return
	}

	if m.SinceLanding > cfg.Jump.ChainWindow {
		m.JumpChain = 0
	}
	n := m.JumpChain + 1
	kin.Velocity.Y = gamemath.JumpSpeed(cfg.Jump.Speed, n, cfg.Jump.TripleBoost)
	m.JumpChain = n % 3

	kin.OnGround = false
	m.SinceJump = 0
	m.SinceJumpPress = components.LongAgo
	m.SinceUngrounded = components.LongAgo // no coyote jump after a real one
	m.GroundedFor = 0
}

func updateHorizontal(m *components.MotionData, kin *components.KinematicsData, input *components.InputData, mods *components.ModifiersData, dt float64) {
	if m.Locked() {
		return
	}

	maxSpeed := cfg.Player.MaxSpeed * mods.Speed
	wish := gamemath.CameraRelative(input.Smoothed.X, input.Smoothed.Y, input.CameraYaw)
	hasInput := wish.HorizontalLen() > cfg.Player.InputDeadzone

	if kin.OnGround {
		limit := gamemath.DegToRad(cfg.Player.SlopeLimitDeg)
		if gamemath.SlopeAngle(kin.GroundNormal) > limit {
			slide := gamemath.Downhill(kin.GroundNormal).Scale(cfg.Player.SlopeSlideSpeed)
			h := kin.Velocity.Horizontal().Lerp(slide, cfg.Player.SlopeSlideBlend)
			kin.Velocity = kin.Velocity.WithHorizontal(h)
			return
		}

		if hasInput {
			kin.Velocity = gamemath.Accelerate(kin.Velocity, wish.Scale(maxSpeed), cfg.Player.Acceleration*dt)
		} else {
			kin.Velocity = gamemath.ApplyFriction(kin.Velocity, cfg.Player.Friction*dt)
		}
		return
	}

	if m.GroundPounding || !hasInput {
		return
	}
	target := wish.Scale(maxSpeed * cfg.Player.AirSpeedRatio)
	kin.Velocity = gamemath.Accelerate(kin.Velocity, target, cfg.Player.AirAcceleration*dt)
}

func updateFacing(m *components.MotionData, kin *components.KinematicsData, tr *components.TransformData, dt float64) {
	defer func() { tr.Yaw = gamemath.WrapAngle(tr.Yaw) }()

	if m.Locked() || m.GroundPounding {
		return
	}
	h := kin.Velocity.Horizontal()
	if h.LenSq() < minFacingSpeed*minFacingSpeed {
		return
	}
	step := gamemath.DegToRad(cfg.Player.TurnRateDeg) * dt
	tr.Yaw = gamemath.RotateToward(tr.Yaw, gamemath.HeadingYaw(h), step)
}

const minFacingSpeed = 0.1
