package scenes

import (
	"encoding/json"

	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings are the sandbox preferences stored on disk. Simulation
// state is never saved.
type SavedSettings struct {
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
	CameraRateIndex int    `json:"cameraRateIndex"`
	ShowHitboxes    bool   `json:"showHitboxes"`
	ShowGround      bool   `json:"showGround"`
	LastArena       string `json:"lastArena"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence opens the settings store. The sandbox runs without it
// when the platform has no writable data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "verdant",
	})
	if err != nil {
		logger.L().Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns nil with no error when nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.L().Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.L().Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.L().Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live window and debug state.
func CurrentSettings(arena string, cameraRateIndex int) *SavedSettings {
	return &SavedSettings{
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: resolutionIndex,
		CameraRateIndex: cameraRateIndex,
		ShowHitboxes:    cfg.Debug.ShowHitboxes,
		ShowGround:      cfg.Debug.ShowGround,
		LastArena:       arena,
	}
}

var resolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex

// ApplySavedSettings applies loaded window and debug preferences. Used at
// startup before the first scene is created.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		resolutionIndex = saved.ResolutionIndex
		if !saved.Fullscreen {
			res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
	if saved.CameraRateIndex >= 0 && saved.CameraRateIndex < len(cfg.SettingsMenu.CameraTurnRates) {
		cfg.Input.CameraTurnRateDeg = cfg.SettingsMenu.CameraTurnRates[saved.CameraRateIndex]
	}

	cfg.Debug.ShowHitboxes = saved.ShowHitboxes
	cfg.Debug.ShowGround = saved.ShowGround
}

// CycleResolution steps to the next window size and returns its label.
func CycleResolution() string {
	resolutionIndex = (resolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
	res := cfg.SettingsMenu.Resolutions[resolutionIndex]
	if !ebiten.IsFullscreen() {
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	return res.Label
}

// cameraRateIndexOf finds the preset matching rate, or 0.
func cameraRateIndexOf(rate float64) int {
	for i, r := range cfg.SettingsMenu.CameraTurnRates {
		if r == rate {
			return i
		}
	}
	return 0
}
