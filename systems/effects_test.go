package systems

import (
	"testing"

	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/vfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHitFlashReverts(t *testing.T) {
	tw := newTestWorld(t)
	target := tw.target("dummy", forward(2))
	tint := components.Tint.Get(target)

	TriggerHitFlash(tw.w, tw.sink, target)
	assert.Equal(t, cfg.Effects.FlashColor, tint.Current)
	require.Equal(t, 1, tw.sink.Count(vfx.HitSpark))

	UpdateEffects(tw.w, 0.1)
	assert.Equal(t, cfg.Effects.FlashColor, tint.Current)
	live := tw.sink.Live()
	require.Len(t, live, 1)
	assert.Less(t, live[0].Scale, 1.0, "the spark fades out")

	UpdateEffects(tw.w, 0.15)
	assert.Equal(t, tint.Base, tint.Current)
	assert.Zero(t, tw.sink.Count(vfx.HitSpark))
}

func TestOverlappingFlashesExtend(t *testing.T) {
	tw := newTestWorld(t)
	target := tw.target("dummy", forward(2))
	tint := components.Tint.Get(target)

	TriggerHitFlash(tw.w, tw.sink, target)
	UpdateEffects(tw.w, 0.1)
	TriggerHitFlash(tw.w, tw.sink, target)

	// The first revert comes due but the second hit still owns the tint
	UpdateEffects(tw.w, 0.15)
	assert.Equal(t, cfg.Effects.FlashColor, tint.Current)

	UpdateEffects(tw.w, 0.1)
	assert.Equal(t, tint.Base, tint.Current)
}

func TestRevertOnRemovedTargetIsNoop(t *testing.T) {
	tw := newTestWorld(t)
	target := tw.target("dummy", forward(2))

	TriggerHitFlash(tw.w, tw.sink, target)
	tw.w.Remove(target.Entity())

	assert.NotPanics(t, func() {
		UpdateEffects(tw.w, 1)
	})
	level, ok := levelEntry(tw.w)
	require.True(t, ok)
	assert.Empty(t, components.Schedule.Get(level).Pending)
	assert.Zero(t, tw.sink.Count(vfx.HitSpark))
}

func TestScheduledEffectsFireInOrder(t *testing.T) {
	tw := newTestWorld(t)
	a := tw.sink.Spawn(vfx.HitSpark, gamemath.Vec3{})
	b := tw.sink.Spawn(vfx.HitSpark, gamemath.Vec3{})
	c := tw.sink.Spawn(vfx.HitSpark, gamemath.Vec3{})

	ScheduleEffect(tw.w, 0.3, components.ScheduledEffect{Action: components.RemoveVisual, Handle: a})
	ScheduleEffect(tw.w, 0.1, components.ScheduledEffect{Action: components.RemoveVisual, Handle: b})
	ScheduleEffect(tw.w, 0.2, components.ScheduledEffect{Action: components.RemoveVisual, Handle: c})

	UpdateEffects(tw.w, 0.15)
	assert.Equal(t, 2, tw.sink.Count(vfx.HitSpark))

	UpdateEffects(tw.w, 0.1)
	assert.Equal(t, 1, tw.sink.Count(vfx.HitSpark))
	assert.Equal(t, a, tw.sink.Live()[0].Handle)

	UpdateEffects(tw.w, 0)
	assert.Equal(t, 1, tw.sink.Count(vfx.HitSpark), "a zero step does not advance the clock")

	UpdateEffects(tw.w, 0.1)
	assert.Zero(t, tw.sink.Count(vfx.HitSpark))
}

func TestEffectsWithoutLevel(t *testing.T) {
	w := donburi.NewWorld()

	assert.NotPanics(t, func() {
		ScheduleEffect(w, 1, components.ScheduledEffect{})
		UpdateEffects(w, 1)
		SetCameraYaw(w, 1)
	})
	assert.Nil(t, groundOf(w))
	assert.Equal(t, vfx.Nop{}, sinkOf(w))
}

func levelEntry(w donburi.World) (*donburi.Entry, bool) {
	var level *donburi.Entry
	components.Schedule.Each(w, func(e *donburi.Entry) {
		level = e
	})
	return level, level != nil
}
