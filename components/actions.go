package components

import (
	"github.com/automoto/verdant/config"
	"github.com/yohamta/donburi/features/math"
)

// ActionState is the edge view of one logical action for this frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// ActionsData holds the polled action buttons for this frame and the last,
// plus the left stick after the deadzone (X right, Y forward).
type ActionsData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
	Stick    math.Vec2
}

// Advance makes the current frame the previous one and clears it for the
// next poll.
func (a *ActionsData) Advance() {
	a.Previous = a.Current
	a.Current = [config.ActionCount]bool{}
	a.Stick = math.Vec2{}
}
