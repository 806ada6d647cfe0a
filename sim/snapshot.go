package sim

import (
	"image/color"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/systems"
	"github.com/automoto/verdant/tags"
	"github.com/yohamta/donburi"
)

// ActorView is a read-only copy of the actor for display and tests.
type ActorView struct {
	Name      string
	Position  gamemath.Vec3
	Velocity  gamemath.Vec3
	Yaw       float64
	OnGround  bool
	State     cfg.MotionState
	JumpChain int
	Health    float64
	Speed     float64 // speed multiplier
	Power     float64 // damage multiplier
	Tint      color.RGBA
	Abilities systems.AbilityReport
	Offers    []systems.HitboxOffer
}

type TargetView struct {
	Name     string
	Position gamemath.Vec3
	Radius   float64
	Health   float64
	Max      float64
	Stun     float64
	Defeated bool
	Tint     color.RGBA
}

// Snapshot is the whole simulation at the end of a step.
type Snapshot struct {
	Tick      uint64
	Arena     string
	CameraYaw float64
	Actor     ActorView
	Targets   []TargetView
	Stats     Stats
}

// Snapshot copies the current state. It does not advance anything.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Stats: g.stats}
	if g.world == nil {
		return snap
	}
	if g.arena != nil {
		snap.Arena = g.arena.Name
	}
	if level, ok := tags.Level.First(g.world); ok {
		snap.CameraYaw = components.Camera.Get(level).Yaw
	}
	if g.actor != nil && g.actor.Valid() {
		snap.Actor = actorView(g.actor)
	}
	tags.Target.Each(g.world, func(e *donburi.Entry) {
		snap.Targets = append(snap.Targets, targetView(e))
	})
	return snap
}

func actorView(e *donburi.Entry) ActorView {
	tr := components.Transform.Get(e)
	kin := components.Kinematics.Get(e)
	motion := components.Motion.Get(e)
	mods := components.Modifiers.Get(e)

	return ActorView{
		Name:      components.Player.Get(e).Name,
		Position:  tr.Position,
		Velocity:  kin.Velocity,
		Yaw:       tr.Yaw,
		OnGround:  kin.OnGround,
		State:     motion.State(kin),
		JumpChain: motion.JumpChain,
		Health:    components.Health.Get(e).Current,
		Speed:     mods.Speed,
		Power:     mods.Power,
		Tint:      components.Tint.Get(e).Current,
		Abilities: systems.AbilityInfo(e),
		Offers:    peekOffers(e),
	}
}

func targetView(e *donburi.Entry) TargetView {
	t := components.Target.Get(e)
	hp := components.Health.Get(e)
	return TargetView{
		Name:     t.Name,
		Position: components.Transform.Get(e).Position,
		Radius:   t.Radius,
		Health:   hp.Current,
		Max:      hp.Max,
		Stun:     t.Stun,
		Defeated: hp.Defeated,
		Tint:     components.Tint.Get(e).Current,
	}
}

// peekOffers lists the actor's live attack and special hitboxes without
// consuming the wind gust.
func peekOffers(e *donburi.Entry) []systems.HitboxOffer {
	var offers []systems.HitboxOffer
	if o, ok := systems.AttackHitbox(e); ok {
		offers = append(offers, o)
	}
	if o, ok := systems.SpecialHitbox(e); ok {
		offers = append(offers, o)
	}
	return offers
}
