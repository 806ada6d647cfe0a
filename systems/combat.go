package systems

import (
	"math"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/vfx"
	"github.com/yohamta/donburi"
)

// HitRecord is one resolved hit, applied in the same tick it is produced.
type HitRecord struct {
	Target    *donburi.Entry
	Attacker  donburi.Entity
	Kind      cfg.AttackKind
	Serial    uint32
	Damage    float64
	Knockback gamemath.Vec3
	Stun      float64
}

// UpdateCombat resolves every actor's offers against the targets and
// applies the hits. Each action instance lands on a target at most once.
func UpdateCombat(w donburi.World) {
	targets := targetsOf(w)
	sink := sinkOf(w)

	for _, actor := range actorsOf(w) {
		// Offers are taken even with nothing to hit so gusts keep their rhythm
		offers := HitboxOffers(actor)
		if len(targets) == 0 {
			continue
		}
		log := components.HitLog.Get(actor)
		for _, offer := range offers {
			for _, rec := range ResolveHits(offer, targets) {
				if log.Seen(rec.Kind, rec.Serial, rec.Target.Entity()) {
					continue
				}
				ApplyHit(w, sink, rec)
			}
		}
	}
}

// ResolveHits tests candidates against an offer. A candidate is hit when it
// is strictly closer than the range and, for cone attacks, strictly inside
// the cone. Candidates without a transform are skipped.
func ResolveHits(offer HitboxOffer, candidates []*donburi.Entry) []HitRecord {
	attack := cfg.Combat.Attack(offer.Kind)
	knockback := offer.Knockback
	if knockback <= 0 && offer.Kind == cfg.AttackSwing {
		knockback = cfg.Combat.Swing.Knockback
	}
	cosHalf := math.Cos(offer.HalfAngle)

	var hits []HitRecord
	for _, c := range candidates {
		if c == nil || !c.Valid() || !c.HasComponent(components.Transform) {
			continue
		}
		if offer.Owner != donburi.Null && c.Entity() == offer.Owner {
			continue
		}

		to := components.Transform.Get(c).Position.Sub(offer.Origin)
		dist := to.Len()
		if !(dist < offer.Range) {
			continue
		}

		dir := offer.Forward
		if to.LenSq() >= gamemath.Epsilon {
			dir = to.Scale(1 / dist)
		}
		if !offer.Flat && !(dir.Dot(offer.Forward) > cosHalf) {
			continue
		}

		hits = append(hits, HitRecord{
			Target:    c,
			Attacker:  offer.Owner,
			Kind:      offer.Kind,
			Serial:    offer.Serial,
			Damage:    offer.Damage,
			Knockback: dir.Scale(knockback),
			Stun:      attack.Stun,
		})
	}
	return hits
}

// ApplyHit subtracts damage without clamping, sets stun, shoves the target
// and starts a red flash that the schedule reverts. A hit on an entity
// that no longer exists does nothing.
func ApplyHit(w donburi.World, sink vfx.Sink, rec HitRecord) {
	t := rec.Target
	if t == nil || !t.Valid() {
		return
	}

	if t.HasComponent(components.Health) {
		components.Health.Get(t).Current -= rec.Damage
	}
	if t.HasComponent(components.Target) {
		components.Target.Get(t).Stun = rec.Stun
	}

	if t.HasComponent(components.Transform) && rec.Knockback.IsFinite() {
		tr := components.Transform.Get(t)
		tr.Position = tr.Position.Add(rec.Knockback)
	}

	TriggerHitFlash(w, sink, t)

	HitLandedEvent.Publish(w, HitLanded{
		Attacker:  rec.Attacker,
		Target:    t.Entity(),
		Kind:      rec.Kind,
		Damage:    rec.Damage,
		Knockback: rec.Knockback,
		Stun:      rec.Stun,
	})
}
