package scenes

import (
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollActions swaps the action buffers and reads this frame's keyboard and
// gamepad state into a.
func pollActions(a *components.ActionsData) {
	a.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				a.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					a.Current[actionID] = true
				}
			}
		}
	}

	readLeftStick(a)
}

// readLeftStick takes the first left stick outside the deadzone. Stick up
// is forward.
func readLeftStick(a *components.ActionsData) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal*horizontal+vertical*vertical < deadzone*deadzone {
			continue
		}
		a.Stick.X = horizontal
		a.Stick.Y = -vertical
		return
	}
}
