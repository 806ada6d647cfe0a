package components

import (
	"github.com/automoto/verdant/config"
	"github.com/yohamta/donburi"
)

// HitLogData remembers which entities each attack instance already hit so
// a multi-tick hitbox window lands once per target.
type HitLogData struct {
	Serial [config.AttackKindCount]uint32
	Hit    [config.AttackKindCount]map[donburi.Entity]bool
}

// Seen reports whether target was hit by the given action instance and
// records it if not. A new serial forgets the previous instance.
func (h *HitLogData) Seen(kind config.AttackKind, serial uint32, target donburi.Entity) bool {
	if h.Hit[kind] == nil || h.Serial[kind] != serial {
		h.Serial[kind] = serial
		h.Hit[kind] = make(map[donburi.Entity]bool)
	}
	if h.Hit[kind][target] {
		return true
	}
	h.Hit[kind][target] = true
	return false
}

var HitLog = donburi.NewComponentType[HitLogData]()
