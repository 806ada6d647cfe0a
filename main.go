package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/verdant/config"
	"github.com/automoto/verdant/fonts"
	"github.com/automoto/verdant/logger"
	"github.com/automoto/verdant/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(opts scenes.ArenaOptions) (*Game, error) {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.HUD, goregular.TTF, 12},
		{fonts.HUDBold, gobold.TTF, 14},
		{fonts.HUDTitle, gobold.TTF, 24},
		{fonts.HUDSmall, goregular.TTF, 10},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return nil, err
		}
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, opts)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		arena     = flag.String("arena", "", "bundled arena to open (default: first, or the last one played)")
		tuning    = flag.String("tuning", "", "YAML file overriding motion, combat and ability tuning")
		logLevel  = flag.String("log-level", "info", "debug, info, warn or error")
		logFormat = flag.String("log-format", "console", "console, text or json")
		seed      = flag.Int64("seed", 1, "seed for ability particle randomness")
		hitboxes  = flag.Bool("hitboxes", false, "start with hitbox overlay on")
	)
	flag.Parse()

	log := logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})

	if *tuning != "" {
		t, err := config.LoadTuning(*tuning)
		if err == nil {
			err = t.Apply()
		}
		if err != nil {
			log.Error("tuning rejected", "path", *tuning, "err", err)
			os.Exit(1)
		}
		log.Info("tuning applied", "path", *tuning)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("verdant")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := scenes.InitPersistence(); err != nil {
		log.Warn("running without saved settings", "err", err)
	}
	opts := scenes.ArenaOptions{Arena: *arena, Seed: *seed}
	if saved, err := scenes.LoadSettings(); err == nil && saved != nil {
		scenes.ApplySavedSettings(saved)
		if opts.Arena == "" {
			opts.Arena = saved.LastArena
		}
	}
	if *hitboxes {
		config.Debug.ShowHitboxes = true
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
