package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/verdant/assets"
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/fonts"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/systems"
	"github.com/automoto/verdant/tags"
	"github.com/automoto/verdant/vfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const discSize = 32

// Height lifts a body this many screen units per world unit of elevation,
// so jumps read in a top-down view.
const heightLift = 0.5

const controlsHint = "WASD move  Space jump  Shift special  J attack  1-3 abilities  Q/E camera  R reset  Esc pause"

// view maps world XZ onto the screen with the actor at the centre.
type view struct {
	center gamemath.Vec3
	cx, cy float64
	ppu    float64
}

func (as *ArenaScene) view(screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{
		cx:  float64(b.Dx()) / 2,
		cy:  float64(b.Dy()) / 2,
		ppu: cfg.C.PixelsPerUnit,
	}
	if actor := as.game.Actor(); actor != nil && actor.Valid() {
		v.center = components.Transform.Get(actor).Position
	}
	return v
}

// ground returns the screen point of p on the ground plane.
func (v view) ground(p gamemath.Vec3) (float32, float32) {
	return float32(v.cx + (p.X-v.center.X)*v.ppu), float32(v.cy + (p.Z-v.center.Z)*v.ppu)
}

// body returns the screen point of p lifted by its elevation.
func (v view) body(p gamemath.Vec3) (float32, float32) {
	x, y := v.ground(p)
	return x, y - float32(p.Y*v.ppu*heightLift)
}

func (v view) units(u float64) float32 {
	return float32(u * v.ppu)
}

func (as *ArenaScene) drawGround(e *ecs.ECS, screen *ebiten.Image) {
	arena := as.game.Arena()
	if arena == nil {
		return
	}
	v := as.view(screen)

	for _, p := range arena.Ground {
		x, y := v.ground(gamemath.Vec3{X: p.MinX, Z: p.MinZ})
		w, h := v.units(p.MaxX-p.MinX), v.units(p.MaxZ-p.MinZ)
		mid := p.HeightAt((p.MinX+p.MaxX)/2, (p.MinZ+p.MaxZ)/2)
		vector.FillRect(screen, x, y, w, h, groundShade(mid), false)

		if !cfg.Debug.ShowGround {
			continue
		}
		c := cfg.Gray
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right

		if p.GradX != 0 || p.GradZ != 0 {
			// Arrow points downhill
			down := gamemath.Downhill(p.Normal())
			cx, cy := x+w/2, y+h/2
			vector.StrokeLine(screen, cx, cy, cx+float32(down.X)*v.units(1.5), cy+float32(down.Z)*v.units(1.5), 2, cfg.Yellow, true)
		}
	}
}

func (as *ArenaScene) drawTargets(e *ecs.ECS, screen *ebiten.Image) {
	v := as.view(screen)

	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		t := components.Target.Get(entry)
		hp := components.Health.Get(entry)
		x, y := v.body(pos)
		r := v.units(t.Radius)

		if hp.Defeated {
			vector.StrokeCircle(screen, x, y, r, 1, cfg.Gray, true)
			return
		}
		as.drawTinted(screen, x, y, r, components.Tint.Get(entry))

		// Health bar
		barWidth := float64(r) * 2
		barHeight := 3.0
		drawX := float64(x) - barWidth/2
		drawY := float64(y-r) - barHeight - 3
		healthPercentage := 0.0
		if hp.Max > 0 {
			healthPercentage = math.Max(0, hp.Current/hp.Max)
		}
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth*healthPercentage), float32(barHeight), cfg.Green, false)
	})
}

func (as *ArenaScene) drawActor(e *ecs.ECS, screen *ebiten.Image) {
	actor := as.game.Actor()
	if actor == nil || !actor.Valid() {
		return
	}
	v := as.view(screen)
	tr := components.Transform.Get(actor)
	r := v.units(cfg.Player.Radius)

	// Shadow on the ground below, then the body at its elevation
	gx, gy := v.ground(gamemath.Vec3{X: tr.Position.X, Z: tr.Position.Z})
	vector.DrawFilledCircle(screen, gx, gy, r, color.RGBA{0, 0, 0, 90}, true)

	x, y := v.body(tr.Position)
	as.drawTinted(screen, x, y, r, components.Tint.Get(actor))

	facing := gamemath.YawToDir(tr.Yaw)
	vector.StrokeLine(screen, x, y, x+float32(facing.X)*r*1.8, y+float32(facing.Z)*r*1.8, 2, cfg.White, true)

	look := gamemath.YawToDir(as.camera.CurrentYaw())
	vector.StrokeLine(screen, gx, gy, gx+float32(look.X)*r*4, gy+float32(look.Z)*r*4, 1, cfg.LightBlue, true)
}

func (as *ArenaScene) drawVisuals(e *ecs.ECS, screen *ebiten.Image) {
	v := as.view(screen)

	for _, vis := range as.visuals.Live() {
		x, y := v.body(vis.Pos)
		scale := float32(math.Max(0, vis.Scale))
		switch vis.Kind {
		case vfx.LeafSwirl:
			vector.DrawFilledCircle(screen, x, y, v.units(0.15)*scale+1, cfg.LightGreen, true)
		case vfx.Flame:
			vector.DrawFilledCircle(screen, x, y, v.units(0.2)*scale+1, cfg.Orange, true)
		case vfx.HitSpark:
			vector.DrawFilledCircle(screen, x, y, v.units(0.5)*scale, cfg.Yellow, true)
		case vfx.GustWave:
			vector.StrokeCircle(screen, x, y, v.units(0.3)*scale+1, 1, cfg.LightBlue, true)
		}
	}
}

func (as *ArenaScene) drawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	v := as.view(screen)
	hitboxColor := color.RGBA{255, 0, 0, 160}

	for _, offer := range as.game.Snapshot().Actor.Offers {
		drawOffer(screen, v, offer, hitboxColor)
	}
}

func drawOffer(screen *ebiten.Image, v view, offer systems.HitboxOffer, c color.Color) {
	x, y := v.ground(offer.Origin)
	vector.StrokeCircle(screen, x, y, v.units(offer.Range), 1, c, true)
	if offer.Flat {
		return
	}

	heading := gamemath.HeadingYaw(offer.Forward)
	for _, side := range [...]float64{-1, 1} {
		d := gamemath.YawToDir(heading + side*offer.HalfAngle)
		vector.StrokeLine(screen, x, y, x+float32(d.X)*v.units(offer.Range), y+float32(d.Z)*v.units(offer.Range), 1, c, true)
	}
}

func (as *ArenaScene) drawHint(e *ecs.ECS, screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	text.Draw(screen, controlsHint, fonts.HUDSmall.Get(), 8, h-8, cfg.Gray)
}

// drawTinted draws a disc in the entity's tint, blending to the flash colour
// while a hit flash is showing.
func (as *ArenaScene) drawTinted(screen *ebiten.Image, x, y, r float32, tint *components.TintData) {
	if assets.TintShader == nil || as.disc == nil {
		vector.DrawFilledCircle(screen, x, y, r, tint.Current, true)
		return
	}

	flash := float32(0)
	if tint.Current != tint.Base {
		flash = 1
	}

	op := &ebiten.DrawRectShaderOptions{}
	s := float64(2*r) / discSize
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x-r), float64(y-r))
	op.Images[0] = as.disc
	op.Uniforms = map[string]any{
		"Color":      colorVec(tint.Base),
		"FlashColor": colorVec(cfg.Effects.FlashColor),
		"Flash":      flash,
	}
	screen.DrawRectShader(discSize, discSize, assets.TintShader, op)
}

func newDisc(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	return img
}

func colorVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// groundShade darkens low ground and lightens high ground.
func groundShade(height float64) color.RGBA {
	t := math.Max(0, math.Min(1, 0.5+height/8))
	base := cfg.DarkGreen
	return color.RGBA{
		R: uint8(float64(base.R) + t*40),
		G: uint8(float64(base.G) + t*80),
		B: uint8(float64(base.B) + t*40),
		A: 255,
	}
}

func formatRate(deg float64) string {
	return fmt.Sprintf("%.0f deg/s", deg)
}
