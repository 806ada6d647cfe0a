package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains the sandbox options panel choices
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	CameraTurnRates        []float64 // degrees per second
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 640, Label: "960 x 640"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		CameraTurnRates:        []float64{60, 120, 180, 240},
	}
}
