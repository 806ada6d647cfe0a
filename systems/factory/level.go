package factory

import (
	"github.com/automoto/verdant/archetypes"
	"github.com/automoto/verdant/components"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/vfx"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton holding the ground, the effect
// schedule, the visual sink and the camera. A nil sink discards visuals.
func CreateLevel(w donburi.World, name string, ground collision.Provider, bounds collision.Bounds, sink vfx.Sink) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	if sink == nil {
		sink = vfx.Nop{}
	}

	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Ground: ground,
		Bounds: bounds,
	})
	components.Schedule.SetValue(level, components.ScheduleData{})
	components.VFX.SetValue(level, components.VFXData{Sink: sink})
	components.Camera.SetValue(level, components.CameraData{})

	return level
}
