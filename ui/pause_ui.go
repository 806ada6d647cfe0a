package ui

import (
	"image/color"

	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseUI is the sandbox options panel shown while paused.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume          func()
	OnReset           func()
	OnNextArena       func() string
	OnCycleResolution func() string
	OnCycleCamera     func() string

	hitboxButton     *widget.Button
	groundButton     *widget.Button
	arenaButton      *widget.Button
	resolutionButton *widget.Button
	cameraButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

func NewPauseUI() *PauseUI {
	p := &PauseUI{
		titleFace:  fonts.HUDTitle.Face(),
		normalFace: fonts.HUD.Face(),
	}
	p.buildUI()
	return p
}

func (p *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &p.titleFace, &widget.LabelColor{Idle: cfg.White}),
	))

	contentContainer.AddChild(p.newButton("Resume", func() {
		if p.OnResume != nil {
			p.OnResume()
		}
	}))
	contentContainer.AddChild(p.newButton("Reset arena", func() {
		if p.OnReset != nil {
			p.OnReset()
		}
	}))

	p.arenaButton = p.newButton("Next arena", func() {
		if p.OnNextArena != nil {
			p.arenaButton.Text().Label = "Arena: " + p.OnNextArena()
		}
	})
	contentContainer.AddChild(p.arenaButton)

	p.hitboxButton = p.newButton(toggleText("Hitboxes", cfg.Debug.ShowHitboxes), func() {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
		p.hitboxButton.Text().Label = toggleText("Hitboxes", cfg.Debug.ShowHitboxes)
	})
	contentContainer.AddChild(p.hitboxButton)

	p.groundButton = p.newButton(toggleText("Ground", cfg.Debug.ShowGround), func() {
		cfg.Debug.ShowGround = !cfg.Debug.ShowGround
		p.groundButton.Text().Label = toggleText("Ground", cfg.Debug.ShowGround)
	})
	contentContainer.AddChild(p.groundButton)

	p.resolutionButton = p.newButton("Window size", func() {
		if p.OnCycleResolution != nil {
			p.resolutionButton.Text().Label = "Window: " + p.OnCycleResolution()
		}
	})
	contentContainer.AddChild(p.resolutionButton)

	p.cameraButton = p.newButton("Camera speed", func() {
		if p.OnCycleCamera != nil {
			p.cameraButton.Text().Label = "Camera: " + p.OnCycleCamera()
		}
	})
	contentContainer.AddChild(p.cameraButton)

	rootContainer.AddChild(contentContainer)

	p.UI = &ebitenui.UI{Container: rootContainer}
}

func (p *PauseUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 26)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SyncToggles refreshes toggle labels after settings change elsewhere.
func (p *PauseUI) SyncToggles() {
	p.hitboxButton.Text().Label = toggleText("Hitboxes", cfg.Debug.ShowHitboxes)
	p.groundButton.Text().Label = toggleText("Ground", cfg.Debug.ShowGround)
}

func (p *PauseUI) Update() {
	p.UI.Update()
}

func (p *PauseUI) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func toggleText(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}
