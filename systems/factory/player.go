package factory

import (
	"math/rand"

	"github.com/automoto/verdant/archetypes"
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateActor spawns the player character standing at pos. seed drives
// ability particle spawning.
func CreateActor(w donburi.World, name string, pos gamemath.Vec3, seed int64) *donburi.Entry {
	actor := archetypes.Actor.Spawn(w)

	components.Player.SetValue(actor, components.PlayerData{Name: name})
	components.Transform.SetValue(actor, components.TransformData{Position: pos})
	components.Kinematics.SetValue(actor, components.KinematicsData{GroundNormal: gamemath.Up})
	components.Motion.SetValue(actor, components.NewMotion())
	components.Health.SetValue(actor, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Modifiers.SetValue(actor, components.ModifiersData{Speed: 1, Power: 1})
	components.Abilities.SetValue(actor, components.AbilitiesData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	components.HitLog.SetValue(actor, components.HitLogData{})

	// Tint is permanently attached to avoid archetype thrashing on hits
	components.Tint.SetValue(actor, components.TintData{
		Current: cfg.White,
		Base:    cfg.White,
	})

	return actor
}
