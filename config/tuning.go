package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the YAML document for gameplay overrides. Fields left out of a
// file keep the value they had when parsing started.
type Tuning struct {
	Player    PlayerConfig    `yaml:"player"`
	Jump      JumpConfig      `yaml:"jump"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Combat    CombatConfig    `yaml:"combat"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Target    TargetConfig    `yaml:"target"`
	Effects   EffectsConfig   `yaml:"effects"`
	Collision CollisionConfig `yaml:"collision"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:    Player,
		Jump:      Jump,
		Physics:   Physics,
		Combat:    Combat,
		Abilities: Abilities,
		Target:    Target,
		Effects:   Effects,
		Collision: Collision,
	}
}

// ParseTuning overlays YAML onto the live configuration and validates it.
// It does not apply the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks the values the simulation divides by or depends on
// being positive.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"player.max_speed", t.Player.MaxSpeed},
		{"player.acceleration", t.Player.Acceleration},
		{"player.friction", t.Player.Friction},
		{"player.input_smoothing", t.Player.InputSmoothing},
		{"player.turn_rate_deg", t.Player.TurnRateDeg},
		{"player.health", t.Player.Health},
		{"jump.speed", t.Jump.Speed},
		{"physics.gravity", t.Physics.Gravity},
		{"physics.ground_distance", t.Physics.GroundDistance},
		{"physics.max_cast", t.Physics.MaxCast},
		{"physics.max_dt", t.Physics.MaxDt},
		{"combat.attack_cooldown", t.Combat.AttackCooldown},
		{"target.health", t.Target.Health},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	if t.Player.AirSpeedRatio < 0 || t.Player.AirSpeedRatio > 1 {
		return fmt.Errorf("%w: player.air_speed_ratio must be within [0,1], got %v",
			ErrInvalidTuning, t.Player.AirSpeedRatio)
	}
	if t.Combat.AttackActiveAbove < 0 || t.Combat.AttackActiveAbove >= t.Combat.AttackCooldown {
		return fmt.Errorf("%w: combat.attack_active_above must be within [0, attack_cooldown)",
			ErrInvalidTuning)
	}
	if t.Collision.CellSize <= 0 {
		return fmt.Errorf("%w: collision.cell_size must be positive, got %d",
			ErrInvalidTuning, t.Collision.CellSize)
	}

	for _, kind := range AbilityKinds {
		a := t.Abilities.Ability(kind)
		if a.Duration <= 0 || a.Cooldown < 0 {
			return fmt.Errorf("%w: abilities.%s needs a positive duration and non-negative cooldown",
				ErrInvalidTuning, kind)
		}
		if a.SpawnChance < 0 || a.SpawnChance > 1 {
			return fmt.Errorf("%w: abilities.%s.spawn_chance must be within [0,1]", ErrInvalidTuning, kind)
		}
	}

	for k := AttackSwing; k < AttackKindCount; k++ {
		a := t.Combat.Attack(k)
		if a.Range <= 0 {
			return fmt.Errorf("%w: combat.%s.range must be positive", ErrInvalidTuning, k)
		}
		if !a.Flat && (a.HalfAngleDeg <= 0 || a.HalfAngleDeg > 180) {
			return fmt.Errorf("%w: combat.%s.half_angle_deg must be within (0,180]", ErrInvalidTuning, k)
		}
	}

	return nil
}

// Apply validates t and installs it as the live configuration.
func (t Tuning) Apply() error {
	if err := t.Validate(); err != nil {
		return err
	}
	Player = t.Player
	Jump = t.Jump
	Physics = t.Physics
	Combat = t.Combat
	Abilities = t.Abilities
	Target = t.Target
	Effects = t.Effects
	Collision = t.Collision
	return nil
}
