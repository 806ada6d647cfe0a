package config

// AbilityKind identifies one of the timed power-up forms.
type AbilityKind int

const (
	AbilityNone AbilityKind = iota
	AbilityGrowth
	AbilityFire
	AbilityWind
	AbilityCount // Must be last - used for array sizing
)

// AbilityKinds lists the real kinds in slot order.
var AbilityKinds = [...]AbilityKind{AbilityGrowth, AbilityFire, AbilityWind}

func (k AbilityKind) String() string {
	switch k {
	case AbilityNone:
		return "none"
	case AbilityGrowth:
		return "growth"
	case AbilityFire:
		return "fire"
	case AbilityWind:
		return "wind"
	}
	return "unknown"
}

// Valid reports whether k names a real ability.
func (k AbilityKind) Valid() bool {
	return k > AbilityNone && k < AbilityCount
}

// AttackKind identifies the action that produced a hitbox.
type AttackKind int

const (
	AttackSwing AttackKind = iota
	AttackBash
	AttackPound
	AttackGust
	AttackKindCount
)

func (k AttackKind) String() string {
	switch k {
	case AttackSwing:
		return "swing"
	case AttackBash:
		return "bash"
	case AttackPound:
		return "pound"
	case AttackGust:
		return "gust"
	}
	return "unknown"
}

// MotionState is a coarse label for the actor's current locomotion, used
// for display and logging only.
type MotionState int

const (
	Idle MotionState = iota
	Moving
	Airborne
	Bashing
	Backflipping
	GroundPounding
)

func (s MotionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Airborne:
		return "airborne"
	case Bashing:
		return "bashing"
	case Backflipping:
		return "backflipping"
	case GroundPounding:
		return "ground-pounding"
	}
	return "unknown"
}
