package systems

import (
	"github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HitLanded is published for every applied hit.
type HitLanded struct {
	Attacker  donburi.Entity
	Target    donburi.Entity
	Kind      config.AttackKind
	Damage    float64
	Knockback gamemath.Vec3
	Stun      float64
}

// TargetDefeated is published once when a target's health reaches zero.
type TargetDefeated struct {
	Target donburi.Entity
	Name   string
}

// ActorDefeated is published once when the actor's health reaches zero.
// The actor stays in the world.
type ActorDefeated struct {
	Actor donburi.Entity
}

// AbilityChanged is published whenever the active ability changes.
type AbilityChanged struct {
	Actor  donburi.Entity
	From   config.AbilityKind
	To     config.AbilityKind
	Reason string // "activated", "switched", "expired"
}

var (
	HitLandedEvent      = events.NewEventType[HitLanded]()
	TargetDefeatedEvent = events.NewEventType[TargetDefeated]()
	ActorDefeatedEvent  = events.NewEventType[ActorDefeated]()
	AbilityChangedEvent = events.NewEventType[AbilityChanged]()
)

// ProcessEvents delivers every queued event to its subscribers.
func ProcessEvents(w donburi.World) {
	HitLandedEvent.ProcessEvents(w)
	TargetDefeatedEvent.ProcessEvents(w)
	ActorDefeatedEvent.ProcessEvents(w)
	AbilityChangedEvent.ProcessEvents(w)
}
