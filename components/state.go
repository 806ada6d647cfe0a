package components

import (
	"github.com/automoto/verdant/config"
	"github.com/yohamta/donburi"
)

// LongAgo seeds "time since" timers that have never fired.
const LongAgo = 1e6

// MotionData holds the actor's action flags and their timers. Bashing and
// Backflipping are never both set.
type MotionData struct {
	Attacking      bool
	Bashing        bool
	Backflipping   bool
	GroundPounding bool

	AttackCooldown   float64 // seconds until another swing is allowed
	ActionTimer      float64 // bash/backflip lock
	PoundImpactTimer float64 // pound hitbox window after landing

	JumpChain       int // jumps already chained, 0-2
	SinceJump       float64
	SinceUngrounded float64
	SinceJumpPress  float64
	SinceLanding    float64
	GroundedFor     float64

	// Serials count action instances per attack kind so a target is hit
	// at most once by each swing, bash or pound.
	Serials [config.AttackKindCount]uint32
}

// Locked reports whether a bash or backflip owns horizontal control.
func (m *MotionData) Locked() bool {
	return m.Bashing || m.Backflipping
}

// State returns a coarse label for display.
func (m *MotionData) State(k *KinematicsData) config.MotionState {
	switch {
	case m.Bashing:
		return config.Bashing
	case m.Backflipping:
		return config.Backflipping
	case m.GroundPounding:
		return config.GroundPounding
	case !k.OnGround:
		return config.Airborne
	case k.Velocity.HorizontalLen() > 0.1:
		return config.Moving
	}
	return config.Idle
}

// NewMotion returns motion state with no pending presses.
func NewMotion() MotionData {
	return MotionData{
		SinceJump:       LongAgo,
		SinceUngrounded: LongAgo,
		SinceJumpPress:  LongAgo,
		SinceLanding:    LongAgo,
	}
}

var Motion = donburi.NewComponentType[MotionData]()
