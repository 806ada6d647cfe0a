package components

import (
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's place in the world. Yaw 0 faces +Z and is
// kept within (-Pi, Pi].
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64
}

type KinematicsData struct {
	Velocity     gamemath.Vec3
	OnGround     bool
	GroundNormal gamemath.Vec3
	// Drop is how far the last integration moved the body down. The next
	// ground check reaches back over it so a fast fall cannot skip a floor.
	Drop float64
}

var Transform = donburi.NewComponentType[TransformData]()
var Kinematics = donburi.NewComponentType[KinematicsData]()
