package ui

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/fonts"
	"github.com/automoto/verdant/sim"
	"github.com/automoto/verdant/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUDUI is the always-on status panel for the arena sandbox.
type HUDUI struct {
	UI *ebitenui.UI

	arenaLabel   *widget.Label
	motionLabel  *widget.Label
	abilityLabel [len(cfg.AbilityKinds)]*widget.Label
	targetLabel  *widget.Label
	statsLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHUDUI builds the HUD. Fonts must already be loaded.
func NewHUDUI() *HUDUI {
	h := &HUDUI{
		titleFace:  fonts.HUDBold.Face(),
		normalFace: fonts.HUD.Face(),
		smallFace:  fonts.HUDSmall.Face(),
	}
	h.buildUI()
	return h
}

func (h *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.arenaLabel = h.newLabel(&h.titleFace, cfg.White)
	panel.AddChild(h.arenaLabel)

	h.motionLabel = h.newLabel(&h.normalFace, cfg.White)
	panel.AddChild(h.motionLabel)

	for i := range h.abilityLabel {
		h.abilityLabel[i] = h.newLabel(&h.normalFace, abilityColor(cfg.AbilityKinds[i]))
		panel.AddChild(h.abilityLabel[i])
	}

	h.targetLabel = h.newLabel(&h.smallFace, cfg.TargetColor)
	panel.AddChild(h.targetLabel)

	h.statsLabel = h.newLabel(&h.smallFace, cfg.Gray)
	panel.AddChild(h.statsLabel)

	rootContainer.AddChild(panel)

	h.UI = &ebitenui.UI{Container: rootContainer}
}

func (h *HUDUI) newLabel(face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: c}),
	)
}

// UpdateUI refreshes every label from snap.
func (h *HUDUI) UpdateUI(snap sim.Snapshot) {
	h.arenaLabel.Label = fmt.Sprintf("%s  tick %d", snap.Arena, snap.Tick)

	a := snap.Actor
	h.motionLabel.Label = fmt.Sprintf("%s  hp %.0f  speed %.1f  chain %d",
		a.State, a.Health, a.Velocity.HorizontalLen(), a.JumpChain)

	for i, st := range a.Abilities.Abilities {
		if i >= len(h.abilityLabel) {
			break
		}
		h.abilityLabel[i].Label = AbilityLine(st)
	}

	var targets []string
	for _, t := range snap.Targets {
		targets = append(targets, TargetLine(t))
	}
	h.targetLabel.Label = strings.Join(targets, "\n")

	h.statsLabel.Label = fmt.Sprintf("hits %d  damage %.0f  defeated %d",
		snap.Stats.Hits, snap.Stats.DamageDealt, snap.Stats.TargetsDefeated)
}

func (h *HUDUI) Update() {
	h.UI.Update()
}

func (h *HUDUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

// AbilityLine formats one ability row: active time left, cooldown, or ready.
func AbilityLine(st systems.AbilityStatus) string {
	switch {
	case st.Active:
		return fmt.Sprintf("%-6s ACTIVE %4.1fs  cd %4.1fs", st.Kind, st.ActiveRemaining, st.CooldownRemaining)
	case st.Ready:
		return fmt.Sprintf("%-6s ready", st.Kind)
	default:
		return fmt.Sprintf("%-6s cd %4.1fs", st.Kind, st.CooldownRemaining)
	}
}

func TargetLine(t sim.TargetView) string {
	if t.Defeated {
		return fmt.Sprintf("%s  down", t.Name)
	}
	line := fmt.Sprintf("%s  %.0f/%.0f", t.Name, t.Health, t.Max)
	if t.Stun > 0 {
		line += fmt.Sprintf("  stun %.1f", t.Stun)
	}
	return line
}

func abilityColor(kind cfg.AbilityKind) color.RGBA {
	switch kind {
	case cfg.AbilityGrowth:
		return cfg.LightGreen
	case cfg.AbilityFire:
		return cfg.Orange
	case cfg.AbilityWind:
		return cfg.LightBlue
	}
	return cfg.White
}
