package systems

import (
	"math"

	"github.com/automoto/verdant/components"
	"github.com/automoto/verdant/tags"
	"github.com/yohamta/donburi"
)

// UpdateVitals owns health after hits land: it counts stun down, clamps
// health into [0, Max] and signals defeat once. Defeated entities stay in
// the world.
func UpdateVitals(w donburi.World, dt float64) {
	if dt, ok := sanitizeDt(dt); ok {
		components.Target.Each(w, func(e *donburi.Entry) {
			t := components.Target.Get(e)
			t.Stun = math.Max(0, t.Stun-dt)
		})
	}

	var defeated []*donburi.Entry
	components.Health.Each(w, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if math.IsNaN(hp.Current) {
			hp.Current = 0
		}
		hp.Current = math.Max(0, math.Min(hp.Max, hp.Current))

		if hp.Current <= 0 && !hp.Defeated {
			hp.Defeated = true
			defeated = append(defeated, e)
		}
	})

	for _, e := range defeated {
		switch {
		case e.HasComponent(tags.Actor):
			ActorDefeatedEvent.Publish(w, ActorDefeated{Actor: e.Entity()})
		case e.HasComponent(components.Target):
			TargetDefeatedEvent.Publish(w, TargetDefeated{
				Target: e.Entity(),
				Name:   components.Target.Get(e).Name,
			})
		}
	}
}
