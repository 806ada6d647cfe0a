package config

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionJump
	ActionSpecial
	ActionAttack
	ActionAbilityGrowth
	ActionAbilityFire
	ActionAbilityWind
	ActionCameraLeft
	ActionCameraRight
	ActionReset
	ActionPause
	ActionToggleHitboxes
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds camera and stick values for the sandbox
type InputConfig struct {
	// Degrees per second the camera orbits while a camera key is held
	CameraTurnRateDeg float64
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		CameraTurnRateDeg: 120,
		AnalogDeadzone:    0.25,
	}
}
