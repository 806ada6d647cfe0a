package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/verdant/assets"
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/logger"
	"github.com/automoto/verdant/sim"
	"github.com/automoto/verdant/systems"
	"github.com/automoto/verdant/ui"
	"github.com/automoto/verdant/vfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions choose what the sandbox starts with.
type ArenaOptions struct {
	Arena string // bundled arena name; empty picks the first
	Seed  int64
}

// ArenaScene drives the simulation from live input and draws it top-down.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         ArenaOptions
	once         sync.Once
	log          *slog.Logger

	game    *sim.Game
	camera  *sim.OrbitCamera
	visuals *vfx.Registry
	actions components.ActionsData
	paused  bool

	arenaNames []string
	arenaIndex int

	hud   *ui.HUDUI
	pause *ui.PauseUI
	disc  *ebiten.Image
}

func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	pollActions(&as.actions)

	if systems.GetAction(&as.actions, cfg.ActionPause).JustPressed {
		as.setPaused(!as.paused)
	}
	if systems.GetAction(&as.actions, cfg.ActionToggleHitboxes).JustPressed {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
		as.pause.SyncToggles()
	}

	if as.paused {
		as.pause.Update()
		return
	}

	if systems.GetAction(&as.actions, cfg.ActionReset).JustPressed {
		as.reset()
		return
	}

	as.ecs.Update()

	as.hud.UpdateUI(as.game.Snapshot())
	as.hud.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.hud.Draw(screen)
	if as.paused {
		as.pause.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	as.log = logger.L().With("component", "sandbox")

	// The flat-colour fallback is used when the shader does not compile
	if err := assets.LoadShaders(); err != nil {
		as.log.Warn("tint shader unavailable", "err", err)
	}
	as.disc = newDisc(discSize)

	names, err := assets.ArenaNames()
	if err != nil || len(names) == 0 {
		panic("failed to list arenas: " + errString(err))
	}
	as.arenaNames = names
	for i, n := range names {
		if n == as.opts.Arena {
			as.arenaIndex = i
		}
	}

	as.camera = &sim.OrbitCamera{}
	as.visuals = vfx.NewRegistry()
	as.game = sim.NewGame(sim.Options{
		Logger: as.log,
		Sink:   as.visuals,
		Camera: as.camera,
		Seed:   as.opts.Seed,
	})

	as.hud = ui.NewHUDUI()
	as.pause = ui.NewPauseUI()
	as.pause.OnResume = func() { as.setPaused(false) }
	as.pause.OnReset = func() {
		as.reset()
		as.setPaused(false)
	}
	as.pause.OnNextArena = as.nextArena
	as.pause.OnCycleResolution = CycleResolution
	as.pause.OnCycleCamera = as.cycleCameraRate

	if err := as.loadArena(as.arenaNames[as.arenaIndex]); err != nil {
		panic("failed to load arena: " + err.Error())
	}
}

// attach rebuilds the ECS around the game's current world.
func (as *ArenaScene) attach() {
	e := ecs.NewECS(as.game.World())

	e.AddSystem(as.updateCamera)
	e.AddSystem(as.stepSimulation)

	e.AddRenderer(layerWorld, as.drawGround)
	e.AddRenderer(layerWorld, as.drawTargets)
	e.AddRenderer(layerWorld, as.drawActor)
	e.AddRenderer(layerWorld, as.drawVisuals)
	e.AddRenderer(layerWorld, as.drawHitboxes)
	e.AddRenderer(layerWorld, as.drawHint)

	as.ecs = e
}

func (as *ArenaScene) updateCamera(_ *ecs.ECS) {
	as.camera.Turn(systems.CameraTurn(&as.actions), tickDt())
}

func (as *ArenaScene) stepSimulation(_ *ecs.ECS) {
	as.game.Step(sim.Frame{
		Intents: systems.IntentsFromActions(&as.actions),
		Dt:      tickDt(),
	})
}

func (as *ArenaScene) loadArena(name string) error {
	arena, err := assets.LoadArena(name)
	if err != nil {
		return err
	}
	if err := as.game.LoadArena(arena); err != nil {
		return err
	}
	as.attach()
	return nil
}

func (as *ArenaScene) reset() {
	if err := as.game.Reset(); err != nil {
		as.log.Error("reset failed", "err", err)
		return
	}
	as.attach()
}

func (as *ArenaScene) nextArena() string {
	next := (as.arenaIndex + 1) % len(as.arenaNames)
	name := as.arenaNames[next]
	if err := as.loadArena(name); err != nil {
		as.log.Error("arena load failed", "arena", name, "err", err)
		return as.arenaNames[as.arenaIndex]
	}
	as.arenaIndex = next
	as.saveSettings()
	return name
}

func (as *ArenaScene) cycleCameraRate() string {
	rates := cfg.SettingsMenu.CameraTurnRates
	i := (cameraRateIndexOf(cfg.Input.CameraTurnRateDeg) + 1) % len(rates)
	cfg.Input.CameraTurnRateDeg = rates[i]
	return formatRate(rates[i])
}

func (as *ArenaScene) setPaused(paused bool) {
	if as.paused && !paused {
		as.saveSettings()
	}
	as.paused = paused
}

func (as *ArenaScene) saveSettings() {
	_ = SaveSettings(CurrentSettings(
		as.arenaNames[as.arenaIndex],
		cameraRateIndexOf(cfg.Input.CameraTurnRateDeg),
	))
}

func tickDt() float64 {
	return 1 / float64(cfg.C.TickRate)
}

func errString(err error) string {
	if err == nil {
		return "no arenas bundled"
	}
	return err.Error()
}
