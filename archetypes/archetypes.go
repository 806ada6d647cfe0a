package archetypes

import (
	"github.com/automoto/verdant/components"
	"github.com/automoto/verdant/tags"
	"github.com/yohamta/donburi"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Player,
		components.Transform,
		components.Kinematics,
		components.Motion,
		components.Input,
		components.Health,
		components.Modifiers,
		components.Abilities,
		components.HitLog,
		components.Tint,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Transform,
		components.Health,
		components.Tint,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Schedule,
		components.VFX,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
