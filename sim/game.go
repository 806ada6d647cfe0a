// Package sim runs the headless training-arena simulation: one world, one
// actor and its targets, advanced one fixed step at a time.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/logger"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/shared/leveldata"
	"github.com/automoto/verdant/systems"
	"github.com/automoto/verdant/systems/factory"
	"github.com/automoto/verdant/vfx"
	"github.com/yohamta/donburi"
)

var ErrNoArena = errors.New("no arena loaded")

// CameraYaw supplies the camera orientation that move input is read
// against. It is sampled once per step.
type CameraYaw interface {
	CurrentYaw() float64
}

// FixedYaw is a camera that never turns.
type FixedYaw float64

func (y FixedYaw) CurrentYaw() float64 { return float64(y) }

// Options configure a Game. Zero values are usable.
type Options struct {
	Logger *slog.Logger
	Sink   vfx.Sink
	Camera CameraYaw
	Seed   int64
}

// Frame is one step of input.
type Frame struct {
	Intents components.Intents
	Dt      float64
}

// Stats count what happened since the arena was loaded.
type Stats struct {
	Hits            int
	DamageDealt     float64
	TargetsDefeated int
	ActorDefeated   bool
	AbilitySwitches int
}

type Game struct {
	log    *slog.Logger
	sink   vfx.Sink
	camera CameraYaw
	seed   int64

	world donburi.World
	arena *leveldata.Arena
	actor *donburi.Entry
	tick  uint64
	stats Stats
}

func NewGame(opts Options) *Game {
	g := &Game{
		log:    opts.Logger,
		sink:   opts.Sink,
		camera: opts.Camera,
		seed:   opts.Seed,
	}
	if g.log == nil {
		g.log = logger.L()
	}
	g.log = g.log.With("component", "sim")
	if g.sink == nil {
		g.sink = vfx.Nop{}
	}
	if g.camera == nil {
		g.camera = FixedYaw(0)
	}
	return g
}

// LoadArena replaces the world with a fresh one built from arena.
func (g *Game) LoadArena(arena *leveldata.Arena) error {
	if arena == nil {
		return ErrNoArena
	}
	spawn, ok := arena.ActorSpawn()
	if !ok {
		return fmt.Errorf("arena %s: %w", arena.Name, leveldata.ErrNoSpawn)
	}

	ground, err := factory.CreateGround(arena.Bounds, arena.Ground)
	if err != nil {
		return fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	// Visuals owned by the previous world go with it
	if g.world != nil {
		g.clearVisuals()
	}

	w := donburi.NewWorld()
	factory.CreateLevel(w, arena.Name, ground, arena.Bounds, g.sink)
	g.actor = factory.CreateActor(w, spawn.Name, spawnPosition(ground, spawn), g.seed)
	for _, t := range arena.TargetSpawns() {
		factory.CreateTarget(w, t.Name, spawnPosition(ground, t))
	}

	g.world = w
	g.arena = arena
	g.tick = 0
	g.stats = Stats{}
	g.subscribe()

	g.log.Info("arena loaded",
		"arena", arena.Name,
		"patches", len(arena.Ground),
		"targets", len(arena.TargetSpawns()),
	)
	return nil
}

// Reset reloads the current arena.
func (g *Game) Reset() error {
	if g.arena == nil {
		return ErrNoArena
	}
	return g.LoadArena(g.arena)
}

// Step advances the simulation by one frame. Systems run in a fixed order:
// input, motion, hit resolution, abilities, then effects and vitals.
func (g *Game) Step(f Frame) {
	if g.world == nil {
		return
	}
	w := g.world

	systems.SetCameraYaw(w, g.camera.CurrentYaw())
	systems.UpdateInput(w, f.Intents, f.Dt)
	systems.UpdateMotion(w, f.Dt)
	systems.UpdateCombat(w)
	systems.UpdateAbilities(w, f.Dt)
	systems.UpdateEffects(w, f.Dt)
	systems.UpdateVitals(w, f.Dt)
	systems.ProcessEvents(w)

	g.tick++
}

func (g *Game) World() donburi.World { return g.world }

// Actor returns the player character, or nil before an arena is loaded.
func (g *Game) Actor() *donburi.Entry { return g.actor }

func (g *Game) Arena() *leveldata.Arena { return g.arena }

func (g *Game) Tick() uint64 { return g.tick }

func (g *Game) Stats() Stats { return g.stats }

func (g *Game) subscribe() {
	w := g.world
	systems.HitLandedEvent.Subscribe(w, func(_ donburi.World, ev systems.HitLanded) {
		g.stats.Hits++
		g.stats.DamageDealt += ev.Damage
		g.log.Debug("hit",
			"kind", ev.Kind.String(),
			"damage", ev.Damage,
			"stun", ev.Stun,
			"tick", g.tick,
		)
	})
	systems.TargetDefeatedEvent.Subscribe(w, func(_ donburi.World, ev systems.TargetDefeated) {
		g.stats.TargetsDefeated++
		g.log.Info("target defeated", "target", ev.Name, "tick", g.tick)
	})
	systems.ActorDefeatedEvent.Subscribe(w, func(_ donburi.World, _ systems.ActorDefeated) {
		g.stats.ActorDefeated = true
		g.log.Warn("actor defeated", "tick", g.tick)
	})
	systems.AbilityChangedEvent.Subscribe(w, func(_ donburi.World, ev systems.AbilityChanged) {
		if ev.To != cfg.AbilityNone {
			g.stats.AbilitySwitches++
		}
		g.log.Info("ability changed",
			"from", ev.From.String(),
			"to", ev.To.String(),
			"reason", ev.Reason,
		)
	})
}

// clearVisuals removes every particle and spark the current world spawned.
func (g *Game) clearVisuals() {
	components.Abilities.Each(g.world, func(e *donburi.Entry) {
		ab := components.Abilities.Get(e)
		for _, kind := range cfg.AbilityKinds {
			for _, p := range *ab.Particles(kind) {
				g.sink.Remove(p.Handle)
			}
		}
	})
	components.Schedule.Each(g.world, func(e *donburi.Entry) {
		for _, fx := range components.Schedule.Get(e).Pending {
			if fx.Action == components.RemoveVisual {
				g.sink.Remove(fx.Handle)
			}
		}
	})
}

// spawnPosition stands a spawn point on the highest ground under it, or at
// its own elevation over open space.
func spawnPosition(ground collision.Provider, s leveldata.SpawnPoint) gamemath.Vec3 {
	pos := gamemath.Vec3{X: s.X, Y: s.Y, Z: s.Z}
	origin := gamemath.Vec3{X: s.X, Y: cfg.Physics.MaxCast / 2, Z: s.Z}
	if hits := ground.CastDown(origin, gamemath.Vec3{Y: -1}); len(hits) > 0 {
		pos.Y = hits[0].Point.Y
	}
	return pos
}
