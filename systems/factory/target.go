package factory

import (
	"github.com/automoto/verdant/archetypes"
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateTarget spawns a training dummy at pos.
func CreateTarget(w donburi.World, name string, pos gamemath.Vec3) *donburi.Entry {
	target := archetypes.Target.Spawn(w)

	components.Target.SetValue(target, components.TargetData{
		Name:   name,
		Radius: cfg.Target.Radius,
	})
	components.Transform.SetValue(target, components.TransformData{Position: pos})
	components.Health.SetValue(target, components.HealthData{
		Current: cfg.Target.Health,
		Max:     cfg.Target.Health,
	})
	components.Tint.SetValue(target, components.TintData{
		Current: cfg.TargetColor,
		Base:    cfg.TargetColor,
	})

	return target
}
