package components

import (
	"image/color"

	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/vfx"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TintData is the display colour of an entity. A hit flash overrides
// Current until FlashUntil; Base is what it reverts to.
type TintData struct {
	Current    color.RGBA
	Base       color.RGBA
	FlashUntil float64
}

var Tint = donburi.NewComponentType[TintData]()

// EffectAction is what a scheduled effect does when it fires.
type EffectAction int

const (
	RevertTint EffectAction = iota
	RemoveVisual
)

// ScheduledEffect fires once the schedule clock reaches FireAt. Target is
// an entity id rather than an entry so a removed entity is detectable.
type ScheduledEffect struct {
	FireAt float64
	Action EffectAction
	Target donburi.Entity
	Handle vfx.Handle
	Pos    gamemath.Vec3
	Fade   *gween.Tween // scales a visual down until it is removed
}

// ScheduleData is the world's delayed-effect queue and its clock.
type ScheduleData struct {
	Now     float64
	Pending []ScheduledEffect
}

var Schedule = donburi.NewComponentType[ScheduleData]()

// VFXData holds the sink visual requests go to.
type VFXData struct {
	Sink vfx.Sink
}

var VFX = donburi.NewComponentType[VFXData]()
