package systems

import (
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HitboxOffer describes an attack's reach for the current tick. Offers are
// built on demand and only exist inside their action's active window.
type HitboxOffer struct {
	Kind      cfg.AttackKind
	Owner     donburi.Entity
	Serial    uint32 // action instance, for once-per-target hits
	Origin    gamemath.Vec3
	Forward   gamemath.Vec3 // unit, horizontal
	HalfAngle float64       // radians; unused when Flat
	Flat      bool
	Range     float64
	Damage    float64
	Knockback float64 // zero lets the resolver pick the kind's default
}

// AttackHitbox returns the sword swing offer during the opening part of the
// attack cooldown.
func AttackHitbox(actor *donburi.Entry) (HitboxOffer, bool) {
	motion := components.Motion.Get(actor)
	if !motion.Attacking || motion.AttackCooldown <= cfg.Combat.AttackActiveAbove {
		return HitboxOffer{}, false
	}
	offer := newOffer(actor, cfg.AttackSwing, motion.Serials[cfg.AttackSwing])
	// The swing leaves knockback to the resolver's default
	offer.Knockback = 0
	return offer, true
}

// SpecialHitbox returns the bash offer while a bash runs, or the pound
// impact offer right after a ground pound lands.
func SpecialHitbox(actor *donburi.Entry) (HitboxOffer, bool) {
	motion := components.Motion.Get(actor)
	switch {
	case motion.Bashing && motion.ActionTimer > 0:
		return newOffer(actor, cfg.AttackBash, motion.Serials[cfg.AttackBash]), true
	case motion.PoundImpactTimer > 0:
		return newOffer(actor, cfg.AttackPound, motion.Serials[cfg.AttackPound]), true
	}
	return HitboxOffer{}, false
}

// HitboxOffers collects every offer an actor makes this tick, including
// the wind gust.
func HitboxOffers(actor *donburi.Entry) []HitboxOffer {
	var offers []HitboxOffer
	if o, ok := AttackHitbox(actor); ok {
		offers = append(offers, o)
	}
	if o, ok := SpecialHitbox(actor); ok {
		offers = append(offers, o)
	}
	if o, ok := emitGust(actor); ok {
		offers = append(offers, o)
	}
	return offers
}

func newOffer(actor *donburi.Entry, kind cfg.AttackKind, serial uint32) HitboxOffer {
	tr := components.Transform.Get(actor)
	attack := cfg.Combat.Attack(kind)

	power := 1.0
	if actor.HasComponent(components.Modifiers) {
		power = components.Modifiers.Get(actor).Power
	}

	return HitboxOffer{
		Kind:      kind,
		Owner:     actor.Entity(),
		Serial:    serial,
		Origin:    tr.Position,
		Forward:   gamemath.YawToDir(tr.Yaw),
		HalfAngle: gamemath.DegToRad(attack.HalfAngleDeg),
		Flat:      attack.Flat,
		Range:     attack.Range,
		Damage:    attack.Damage * power,
		Knockback: attack.Knockback,
	}
}
