package components

import (
	"github.com/automoto/verdant/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Intents are one tick of player intent. Move axes are in [-1, 1]; the
// Pressed fields are edges, the Held fields are levels.
type Intents struct {
	MoveX          float64
	MoveZ          float64
	JumpPressed    bool
	JumpHeld       bool
	SpecialPressed bool
	SpecialHeld    bool
	AttackPressed  bool
	// Ability requests a switch this tick. AbilityNone means no request.
	Ability config.AbilityKind
}

// InputData stores the filtered intents the motion step consumes.
type InputData struct {
	Last      Intents
	Smoothed  math.Vec2 // X right, Y forward, camera space
	JumpHeld  bool
	CameraYaw float64
}

var Input = donburi.NewComponentType[InputData]()
