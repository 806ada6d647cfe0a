package components

import "github.com/yohamta/donburi"

// CameraData is the orbit camera's horizontal orientation, sampled once
// per tick before input is applied.
type CameraData struct {
	Yaw float64
}

var Camera = donburi.NewComponentType[CameraData]()
