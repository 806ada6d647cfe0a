package systems

import (
	"github.com/automoto/verdant/components"
	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/tags"
	"github.com/automoto/verdant/vfx"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances the schedule clock by dt, fades pending visuals
// and fires every effect that is due, in the order they were scheduled.
func UpdateEffects(w donburi.World, dt float64) {
	level, ok := tags.Level.First(w)
	if !ok {
		return
	}
	sched := components.Schedule.Get(level)
	sink := sinkOf(w)

	if dt > 0 {
		sched.Now += dt
	}

	kept := sched.Pending[:0]
	for _, fx := range sched.Pending {
		if fx.FireAt <= sched.Now {
			fireEffect(w, sink, sched.Now, fx)
			continue
		}
		if fx.Fade != nil && dt > 0 {
			scale, _ := fx.Fade.Update(float32(dt))
			sink.Move(fx.Handle, fx.Pos, float64(scale))
		}
		kept = append(kept, fx)
	}
	// Drop references held by the tail of the reused slice
	for i := len(kept); i < len(sched.Pending); i++ {
		sched.Pending[i] = components.ScheduledEffect{}
	}
	sched.Pending = kept
}

// ScheduleEffect queues fx on the world's schedule, delay seconds from now.
func ScheduleEffect(w donburi.World, delay float64, fx components.ScheduledEffect) {
	level, ok := tags.Level.First(w)
	if !ok {
		return
	}
	sched := components.Schedule.Get(level)
	fx.FireAt = sched.Now + delay
	sched.Pending = append(sched.Pending, fx)
}

// TriggerHitFlash turns the target full red, spawns a hit spark at it and
// schedules both to revert.
func TriggerHitFlash(w donburi.World, sink vfx.Sink, target *donburi.Entry) {
	now := scheduleNow(w)

	if target.HasComponent(components.Tint) {
		tint := components.Tint.Get(target)
		tint.Current = cfg.Effects.FlashColor
		tint.FlashUntil = now + cfg.Effects.FlashDuration
	}
	ScheduleEffect(w, cfg.Effects.FlashDuration, components.ScheduledEffect{
		Action: components.RevertTint,
		Target: target.Entity(),
	})

	// Sparks need a place to appear
	if !target.HasComponent(components.Transform) {
		return
	}
	pos := components.Transform.Get(target).Position
	spark := sink.Spawn(vfx.HitSpark, pos)
	ScheduleEffect(w, cfg.Effects.HitSparkLifetime, components.ScheduledEffect{
		Action: components.RemoveVisual,
		Handle: spark,
		Pos:    pos,
		Fade:   gween.New(1, 0, float32(cfg.Effects.HitSparkLifetime), ease.OutQuad),
	})
}

func fireEffect(w donburi.World, sink vfx.Sink, now float64, fx components.ScheduledEffect) {
	switch fx.Action {
	case components.RevertTint:
		// The target may have been removed since the flash started
		if !w.Valid(fx.Target) {
			return
		}
		e := w.Entry(fx.Target)
		if !e.HasComponent(components.Tint) {
			return
		}
		tint := components.Tint.Get(e)
		// A later hit extends the flash
		if now < tint.FlashUntil {
			return
		}
		tint.Current = tint.Base
	case components.RemoveVisual:
		sink.Remove(fx.Handle)
	}
}

func scheduleNow(w donburi.World) float64 {
	if level, ok := tags.Level.First(w); ok {
		return components.Schedule.Get(level).Now
	}
	return 0
}
