package components

import (
	"math/rand"

	"github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/vfx"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AbilityTimer is the bookkeeping every ability kind shares. The cooldown
// starts at activation and runs alongside the active window.
type AbilityTimer struct {
	ActiveRemaining   float64
	CooldownRemaining float64
}

// Particle is one transient visual owned by an active ability. Progress
// runs 0 -> 1 over the particle's lifetime.
type Particle struct {
	Handle   vfx.Handle
	Progress *gween.Tween
	Phase    float64       // orbit angle for leaves, lateral offset for flames
	Origin   gamemath.Vec3 // where a flame started
}

type GrowthForm struct {
	AbilityTimer
	Leaves []Particle
}

type FireForm struct {
	AbilityTimer
	Flames []Particle
}

type WindForm struct {
	AbilityTimer
	Streaks      []Particle
	GustCooldown float64
	GustSerial   uint32
}

// AbilitiesData holds every ability for the whole session. Only Active may
// have ActiveRemaining > 0.
type AbilitiesData struct {
	Active config.AbilityKind
	Growth GrowthForm
	Fire   FireForm
	Wind   WindForm
	Rand   *rand.Rand
}

// Timer returns the shared timers of kind, or nil for an unknown kind.
func (a *AbilitiesData) Timer(kind config.AbilityKind) *AbilityTimer {
	switch kind {
	case config.AbilityGrowth:
		return &a.Growth.AbilityTimer
	case config.AbilityFire:
		return &a.Fire.AbilityTimer
	case config.AbilityWind:
		return &a.Wind.AbilityTimer
	}
	return nil
}

// Particles returns the particle list owned by kind, or nil.
func (a *AbilitiesData) Particles(kind config.AbilityKind) *[]Particle {
	switch kind {
	case config.AbilityGrowth:
		return &a.Growth.Leaves
	case config.AbilityFire:
		return &a.Fire.Flames
	case config.AbilityWind:
		return &a.Wind.Streaks
	}
	return nil
}

var Abilities = donburi.NewComponentType[AbilitiesData]()
