package systems

import (
	"github.com/automoto/verdant/components"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/tags"
	"github.com/automoto/verdant/vfx"
	"github.com/yohamta/donburi"
)

// groundOf returns the loaded level's ground, or nil before a level exists.
func groundOf(w donburi.World) collision.Provider {
	if level, ok := tags.Level.First(w); ok {
		return components.Level.Get(level).Ground
	}
	return nil
}

// sinkOf returns the world's visual sink. It never returns nil.
func sinkOf(w donburi.World) vfx.Sink {
	if level, ok := tags.Level.First(w); ok {
		if s := components.VFX.Get(level).Sink; s != nil {
			return s
		}
	}
	return vfx.Nop{}
}

// SetCameraYaw records the camera orientation input is read against.
func SetCameraYaw(w donburi.World, yaw float64) {
	if level, ok := tags.Level.First(w); ok {
		components.Camera.Get(level).Yaw = finiteOr(yaw, 0)
	}
}

func actorsOf(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Actor.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func targetsOf(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Target.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
