package config

import "image/color"

// PlayerConfig contains ground/air locomotion and special-move tuning for the actor
type PlayerConfig struct {
	// Movement
	MaxSpeed        float64 `yaml:"max_speed"`        // units/s at speed multiplier 1
	Acceleration    float64 `yaml:"acceleration"`     // units/s^2 toward the input target
	Friction        float64 `yaml:"friction"`         // units/s^2 when input is near zero
	AirAcceleration float64 `yaml:"air_acceleration"` // units/s^2 while airborne
	AirSpeedRatio   float64 `yaml:"air_speed_ratio"`  // fraction of max speed reachable in the air
	InputDeadzone   float64 `yaml:"input_deadzone"`   // smoothed stick length treated as no input
	InputSmoothing  float64 `yaml:"input_smoothing"`  // low-pass time constant in seconds
	TurnRateDeg     float64 `yaml:"turn_rate_deg"`    // degrees/s

	// Slopes
	SlopeLimitDeg   float64 `yaml:"slope_limit_deg"`
	SlopeSlideBlend float64 `yaml:"slope_slide_blend"` // per-tick blend toward the downhill slide
	SlopeSlideSpeed float64 `yaml:"slope_slide_speed"`

	// Specials
	BashSpeedThreshold float64 `yaml:"bash_speed_threshold"` // horizontal speed above which special is a bash
	BashSpeed          float64 `yaml:"bash_speed"`
	BashDuration       float64 `yaml:"bash_duration"`
	BackflipSpeed      float64 `yaml:"backflip_speed"` // backwards, opposite facing
	BackflipLift       float64 `yaml:"backflip_lift"`
	BackflipDuration   float64 `yaml:"backflip_duration"`
	GroundPoundSpeed   float64 `yaml:"ground_pound_speed"` // negative: downward
	PoundImpactWindow  float64 `yaml:"pound_impact_window"`

	// Combat
	Health float64 `yaml:"health"`

	// Dimensions
	Radius float64 `yaml:"radius"`
}

// JumpConfig contains jump timing windows and launch speeds
type JumpConfig struct {
	Speed              float64 `yaml:"speed"`
	TripleBoost        float64 `yaml:"triple_boost"`
	CoyoteTime         float64 `yaml:"coyote_time"`
	BufferTime         float64 `yaml:"buffer_time"`
	ChainWindow        float64 `yaml:"chain_window"`
	ChainResetGrounded float64 `yaml:"chain_reset_grounded"`
	ReleaseCut         float64 `yaml:"release_cut"` // vel.y multiplier when jump is released while rising
}

// PhysicsConfig contains gravity and ground ray values
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	RayLift        float64 `yaml:"ray_lift"`        // ray origin height above the feet
	GroundDistance float64 `yaml:"ground_distance"` // max ray distance counted as contact
	SnapEpsilon    float64 `yaml:"snap_epsilon"`
	StepHeight     float64 `yaml:"step_height"`
	MaxCast        float64 `yaml:"max_cast"`
	MinDt          float64 `yaml:"min_dt"` // steps shorter than this are ignored
	MaxDt          float64 `yaml:"max_dt"` // steps longer than this are clamped
}

// AttackConfig describes the hit volume and effect of one attack kind
type AttackConfig struct {
	Range        float64 `yaml:"range"`
	HalfAngleDeg float64 `yaml:"half_angle_deg"` // ignored for flat attacks
	Flat         bool    `yaml:"flat"`           // distance-only check, no cone
	Damage       float64 `yaml:"damage"`         // scaled by the attacker's power multiplier
	Knockback    float64 `yaml:"knockback"`
	Stun         float64 `yaml:"stun"` // seconds
}

// CombatConfig contains melee timing and per-attack hit values
type CombatConfig struct {
	AttackCooldown float64 `yaml:"attack_cooldown"`
	// The swing offers a hitbox only while its cooldown is above this.
	AttackActiveAbove float64 `yaml:"attack_active_above"`
	GustCooldown      float64 `yaml:"gust_cooldown"`

	Swing AttackConfig `yaml:"swing"`
	Bash  AttackConfig `yaml:"bash"`
	Pound AttackConfig `yaml:"pound"`
	Gust  AttackConfig `yaml:"gust"`
}

// AbilityConfig contains the timing, modifiers and particle behaviour of one ability
type AbilityConfig struct {
	Duration  float64 `yaml:"duration"`
	Cooldown  float64 `yaml:"cooldown"`
	SpeedMult float64 `yaml:"speed_mult"`
	PowerMult float64 `yaml:"power_mult"`

	// Particles
	SpawnChance      float64 `yaml:"spawn_chance"` // per-tick probability of spawning one
	ParticleLifetime float64 `yaml:"particle_lifetime"`
	MaxParticles     int     `yaml:"max_particles"`
	ParticleRadius   float64 `yaml:"particle_radius"` // orbit radius around the actor
	ParticleRise     float64 `yaml:"particle_rise"`   // height gained over a lifetime
}

// AbilitiesConfig holds one AbilityConfig per ability kind
type AbilitiesConfig struct {
	Growth AbilityConfig `yaml:"growth"`
	Fire   AbilityConfig `yaml:"fire"`
	Wind   AbilityConfig `yaml:"wind"`
}

// TargetConfig contains training target values
type TargetConfig struct {
	Health float64 `yaml:"health"`
	Radius float64 `yaml:"radius"`
}

// EffectsConfig contains hit feedback values
type EffectsConfig struct {
	FlashDuration    float64    `yaml:"flash_duration"`
	FlashColor       color.RGBA `yaml:"-"`
	HitSparkLifetime float64    `yaml:"hit_spark_lifetime"`
}

// CollisionConfig contains ground broadphase values
type CollisionConfig struct {
	CellSize int `yaml:"cell_size"` // world units per resolv cell
}

// Config holds the sandbox window configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64
	TickRate      int
}

// DebugConfig contains sandbox command-line toggles
type DebugConfig struct {
	ShowHitboxes bool
	ShowGround   bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Jump JumpConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Abilities AbilitiesConfig
var Target TargetConfig
var Effects EffectsConfig
var Collision CollisionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	DarkGreen   = color.RGBA{R: 30, G: 70, B: 40, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	TargetColor = color.RGBA{R: 200, G: 170, B: 120, A: 255}
)

func init() {
	C = &Config{
		Width:         960,
		Height:        640,
		PixelsPerUnit: 16,
		TickRate:      60,
	}

	Player = PlayerConfig{
		// Movement
		MaxSpeed:        7.0,
		Acceleration:    40.0,
		Friction:        30.0,
		AirAcceleration: 12.0,
		AirSpeedRatio:   0.8,
		InputDeadzone:   0.1,
		InputSmoothing:  0.06,
		TurnRateDeg:     540.0,

		// Slopes
		SlopeLimitDeg:   37.0,
		SlopeSlideBlend: 0.2,
		SlopeSlideSpeed: 7.0,

		// Specials
		BashSpeedThreshold: 1.0,
		BashSpeed:          15.0,
		BashDuration:       0.35,
		BackflipSpeed:      5.0,
		BackflipLift:       14.0,
		BackflipDuration:   0.6,
		GroundPoundSpeed:   -18.0,
		PoundImpactWindow:  0.1,

		Health: 100,
		Radius: 0.5,
	}

	Jump = JumpConfig{
		Speed:              12.0,
		TripleBoost:        1.25,
		CoyoteTime:         0.08,
		BufferTime:         0.10,
		ChainWindow:        0.35,
		ChainResetGrounded: 0.5,
		ReleaseCut:         0.6,
	}

	Physics = PhysicsConfig{
		Gravity:        30.0,
		RayLift:        0.5,
		GroundDistance: 0.65,
		SnapEpsilon:    0.01,
		StepHeight:     0.45,
		MaxCast:        64.0,
		MinDt:          1e-6,
		MaxDt:          0.1,
	}

	Combat = CombatConfig{
		AttackCooldown:    0.5,
		AttackActiveAbove: 0.3,
		GustCooldown:      1.2,

		Swing: AttackConfig{Range: 5, HalfAngleDeg: 60, Damage: 25, Knockback: 8, Stun: 1.0},
		Bash:  AttackConfig{Range: 2.5, HalfAngleDeg: 45, Damage: 15, Knockback: 15, Stun: 0.5},
		Pound: AttackConfig{Range: 4, Flat: true, Damage: 30, Knockback: 10, Stun: 1.5},
		Gust:  AttackConfig{Range: 6, HalfAngleDeg: 50, Damage: 5, Knockback: 12, Stun: 0.3},
	}

	Abilities = AbilitiesConfig{
		Growth: AbilityConfig{
			Duration:         8,
			Cooldown:         20,
			SpeedMult:        1.3,
			PowerMult:        1.0,
			SpawnChance:      0.3,
			ParticleLifetime: 1.2,
			MaxParticles:     24,
			ParticleRadius:   1.2,
			ParticleRise:     1.0,
		},
		Fire: AbilityConfig{
			Duration:         10,
			Cooldown:         25,
			SpeedMult:        1.0,
			PowerMult:        1.5,
			SpawnChance:      0.5,
			ParticleLifetime: 0.6,
			MaxParticles:     32,
			ParticleRadius:   0.4,
			ParticleRise:     2.0,
		},
		Wind: AbilityConfig{
			Duration:         12,
			Cooldown:         20,
			SpeedMult:        1.15,
			PowerMult:        1.0,
			SpawnChance:      0.2,
			ParticleLifetime: 0.8,
			MaxParticles:     16,
			ParticleRadius:   1.6,
			ParticleRise:     0.5,
		},
	}

	Target = TargetConfig{
		Health: 100,
		Radius: 0.6,
	}

	Effects = EffectsConfig{
		FlashDuration:    0.2,
		FlashColor:       Red,
		HitSparkLifetime: 0.2,
	}

	Collision = CollisionConfig{
		CellSize: 4,
	}
}

// Ability returns the tuning for an ability kind. Unknown kinds get the zero value.
func (a AbilitiesConfig) Ability(kind AbilityKind) AbilityConfig {
	switch kind {
	case AbilityGrowth:
		return a.Growth
	case AbilityFire:
		return a.Fire
	case AbilityWind:
		return a.Wind
	}
	return AbilityConfig{}
}

// Attack returns the tuning for an attack kind.
func (c CombatConfig) Attack(kind AttackKind) AttackConfig {
	switch kind {
	case AttackSwing:
		return c.Swing
	case AttackBash:
		return c.Bash
	case AttackPound:
		return c.Pound
	case AttackGust:
		return c.Gust
	}
	return AttackConfig{}
}
