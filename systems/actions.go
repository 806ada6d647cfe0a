package systems

import (
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
)

// abilityActions maps the ability hotkeys to the kind they request, in
// priority order when several are pressed on one frame.
var abilityActions = [...]struct {
	action cfg.ActionID
	kind   cfg.AbilityKind
}{
	{cfg.ActionAbilityGrowth, cfg.AbilityGrowth},
	{cfg.ActionAbilityFire, cfg.AbilityFire},
	{cfg.ActionAbilityWind, cfg.AbilityWind},
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(a *components.ActionsData, id cfg.ActionID) components.ActionState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return components.ActionState{}
	}
	curr := a.Current[id]
	prev := a.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IntentsFromActions turns polled buttons into one tick of intents. The
// stick wins over the digital directions when it is outside the deadzone.
func IntentsFromActions(a *components.ActionsData) components.Intents {
	var in components.Intents

	x, z := a.Stick.X, a.Stick.Y
	if x*x+z*z < gamemath.Epsilon {
		x, z = digitalAxis(a, cfg.ActionMoveLeft, cfg.ActionMoveRight), digitalAxis(a, cfg.ActionMoveBack, cfg.ActionMoveForward)
	}
	in.MoveX, in.MoveZ = gamemath.ClampUnit2(x, z)

	jump := GetAction(a, cfg.ActionJump)
	in.JumpPressed = jump.JustPressed
	in.JumpHeld = jump.Pressed

	special := GetAction(a, cfg.ActionSpecial)
	in.SpecialPressed = special.JustPressed
	in.SpecialHeld = special.Pressed

	in.AttackPressed = GetAction(a, cfg.ActionAttack).JustPressed

	for _, aa := range abilityActions {
		if GetAction(a, aa.action).JustPressed {
			in.Ability = aa.kind
			break
		}
	}
	return in
}

// CameraTurn is the camera orbit direction this frame: -1, 0 or 1.
func CameraTurn(a *components.ActionsData) float64 {
	return digitalAxis(a, cfg.ActionCameraLeft, cfg.ActionCameraRight)
}

func digitalAxis(a *components.ActionsData, neg, pos cfg.ActionID) float64 {
	v := 0.0
	if a.Current[neg] {
		v--
	}
	if a.Current[pos] {
		v++
	}
	return v
}
