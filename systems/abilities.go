package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/vfx"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// AbilityStatus is a read-only view of one ability for display.
type AbilityStatus struct {
	Kind              cfg.AbilityKind
	Active            bool
	ActiveRemaining   float64
	CooldownRemaining float64
	Ready             bool
}

// AbilityReport is the display snapshot of every ability on an actor.
type AbilityReport struct {
	Active       cfg.AbilityKind
	Abilities    []AbilityStatus
	GustCooldown float64
	AnyReady     bool
}

// UpdateAbilities advances every actor's abilities by dt.
func UpdateAbilities(w donburi.World, dt float64) {
	sink := sinkOf(w)
	for _, actor := range actorsOf(w) {
		StepAbilities(w, actor, sink, dt)
	}
}

// ActivateAbility switches the actor to kind. Requesting the active kind or
// an unknown one does nothing. Any other active ability is deactivated
// first, then kind starts only if it is off cooldown; its cooldown starts
// at the same moment. Reports whether kind became active.
func ActivateAbility(w donburi.World, actor *donburi.Entry, kind cfg.AbilityKind, sink vfx.Sink) bool {
	if !kind.Valid() {
		return false
	}
	ab := components.Abilities.Get(actor)
	if ab.Active == kind {
		return false
	}

	if ab.Active != cfg.AbilityNone {
		deactivateAbility(w, actor, ab, sink, "switched")
	}

	timer := ab.Timer(kind)
	if timer.CooldownRemaining > 0 {
		return false
	}

	conf := cfg.Abilities.Ability(kind)
	timer.ActiveRemaining = conf.Duration
	timer.CooldownRemaining = conf.Cooldown
	ab.Active = kind
	applyModifiers(actor, conf.SpeedMult, conf.PowerMult)

	AbilityChangedEvent.Publish(w, AbilityChanged{
		Actor:  actor.Entity(),
		From:   cfg.AbilityNone,
		To:     kind,
		Reason: "activated",
	})
	return true
}

// StepAbilities ticks every cooldown, then ages and spawns the active
// ability's particles and ends it when its time runs out.
func StepAbilities(w donburi.World, actor *donburi.Entry, sink vfx.Sink, dt float64) {
	dt, ok := sanitizeDt(dt)
	if !ok {
		return
	}
	ab := components.Abilities.Get(actor)
	if ab.Rand == nil {
		ab.Rand = rand.New(rand.NewSource(1))
	}

	for _, kind := range cfg.AbilityKinds {
		t := ab.Timer(kind)
		t.CooldownRemaining = math.Max(0, t.CooldownRemaining-dt)
	}
	// The gust cooldown runs whether or not wind is active
	ab.Wind.GustCooldown = math.Max(0, ab.Wind.GustCooldown-dt)

	kind := ab.Active
	if kind == cfg.AbilityNone {
		applyModifiers(actor, 1, 1)
		return
	}

	conf := cfg.Abilities.Ability(kind)
	timer := ab.Timer(kind)
	timer.ActiveRemaining -= dt

	anchor := components.Transform.Get(actor).Position
	ageParticles(ab, kind, sink, anchor, dt)

	if timer.ActiveRemaining <= 0 {
		deactivateAbility(w, actor, ab, sink, "expired")
		return
	}

	particles := ab.Particles(kind)
	if len(*particles) < conf.MaxParticles && ab.Rand.Float64() < conf.SpawnChance {
		*particles = append(*particles, spawnParticle(ab.Rand, kind, conf, sink, anchor))
	}

	applyModifiers(actor, conf.SpeedMult, conf.PowerMult)
}

// CurrentAbility returns the active kind, or AbilityNone.
func CurrentAbility(actor *donburi.Entry) cfg.AbilityKind {
	return components.Abilities.Get(actor).Active
}

// AbilityInfo snapshots remaining active and cooldown time per ability.
func AbilityInfo(actor *donburi.Entry) AbilityReport {
	ab := components.Abilities.Get(actor)
	report := AbilityReport{
		Active:       ab.Active,
		GustCooldown: ab.Wind.GustCooldown,
	}
	for _, kind := range cfg.AbilityKinds {
		t := ab.Timer(kind)
		st := AbilityStatus{
			Kind:              kind,
			Active:            ab.Active == kind,
			ActiveRemaining:   math.Max(0, t.ActiveRemaining),
			CooldownRemaining: t.CooldownRemaining,
		}
		st.Ready = !st.Active && st.CooldownRemaining <= 0
		report.AnyReady = report.AnyReady || st.Ready
		report.Abilities = append(report.Abilities, st)
	}
	return report
}

// emitGust offers the wind gust whenever its cooldown has run out while
// wind is active, and restarts the cooldown.
func emitGust(actor *donburi.Entry) (HitboxOffer, bool) {
	if !actor.HasComponent(components.Abilities) {
		return HitboxOffer{}, false
	}
	ab := components.Abilities.Get(actor)
	if ab.Active != cfg.AbilityWind || ab.Wind.GustCooldown > 0 {
		return HitboxOffer{}, false
	}
	ab.Wind.GustCooldown = cfg.Combat.GustCooldown
	ab.Wind.GustSerial++
	return newOffer(actor, cfg.AttackGust, ab.Wind.GustSerial), true
}

func deactivateAbility(w donburi.World, actor *donburi.Entry, ab *components.AbilitiesData, sink vfx.Sink, reason string) {
	kind := ab.Active
	if t := ab.Timer(kind); t != nil {
		t.ActiveRemaining = 0
	}
	if particles := ab.Particles(kind); particles != nil {
		for _, p := range *particles {
			sink.Remove(p.Handle)
		}
		*particles = nil
	}
	ab.Active = cfg.AbilityNone
	applyModifiers(actor, 1, 1)

	AbilityChangedEvent.Publish(w, AbilityChanged{
		Actor:  actor.Entity(),
		From:   kind,
		To:     cfg.AbilityNone,
		Reason: reason,
	})
}

func applyModifiers(actor *donburi.Entry, speed, power float64) {
	if !actor.HasComponent(components.Modifiers) {
		return
	}
	mods := components.Modifiers.Get(actor)
	mods.Speed = speed
	mods.Power = power
}

func spawnParticle(rng *rand.Rand, kind cfg.AbilityKind, conf cfg.AbilityConfig, sink vfx.Sink, anchor gamemath.Vec3) components.Particle {
	p := components.Particle{
		Phase:  rng.Float64() * 2 * math.Pi,
		Origin: anchor,
	}
	life := float32(conf.ParticleLifetime)

	var visual vfx.Kind
	switch kind {
	case cfg.AbilityGrowth:
		visual = vfx.LeafSwirl
		p.Progress = gween.New(0, 1, life, ease.OutQuad)
	case cfg.AbilityFire:
		visual = vfx.Flame
		p.Progress = gween.New(0, 1, life, ease.InQuad)
	case cfg.AbilityWind:
		visual = vfx.GustWave
		p.Progress = gween.New(0, 1, life, ease.Linear)
	}
	p.Handle = sink.Spawn(visual, particlePos(kind, conf, p, anchor, 0))
	return p
}

func ageParticles(ab *components.AbilitiesData, kind cfg.AbilityKind, sink vfx.Sink, anchor gamemath.Vec3, dt float64) {
	particles := ab.Particles(kind)
	conf := cfg.Abilities.Ability(kind)

	kept := (*particles)[:0]
	for _, p := range *particles {
		progress, done := p.Progress.Update(float32(dt))
		if done {
			sink.Remove(p.Handle)
			continue
		}
		t := float64(progress)
		sink.Move(p.Handle, particlePos(kind, conf, p, anchor, t), 1-t)
		kept = append(kept, p)
	}
	*particles = kept
}

// particlePos places a particle t of the way through its life. Leaves and
// wind streaks orbit the actor; flames rise from where they spawned.
func particlePos(kind cfg.AbilityKind, conf cfg.AbilityConfig, p components.Particle, anchor gamemath.Vec3, t float64) gamemath.Vec3 {
	switch kind {
	case cfg.AbilityGrowth:
		angle := p.Phase + t*2*math.Pi
		r := conf.ParticleRadius * (0.5 + 0.5*t)
		return anchor.Add(gamemath.Vec3{X: r * math.Sin(angle), Y: conf.ParticleRise * t, Z: r * math.Cos(angle)})
	case cfg.AbilityFire:
		off := gamemath.YawToDir(p.Phase).Scale(conf.ParticleRadius)
		return p.Origin.Add(off).Add(gamemath.Vec3{Y: conf.ParticleRise * t})
	case cfg.AbilityWind:
		angle := p.Phase - t*4*math.Pi
		return anchor.Add(gamemath.Vec3{
			X: conf.ParticleRadius * math.Sin(angle),
			Y: conf.ParticleRise * t,
			Z: conf.ParticleRadius * math.Cos(angle),
		})
	}
	return anchor
}
