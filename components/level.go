package components

import (
	"github.com/automoto/verdant/shared/collision"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded arena. Ground is read-only once the level exists.
type LevelData struct {
	Name   string
	Ground collision.Provider
	Bounds collision.Bounds
}

var Level = donburi.NewComponentType[LevelData]()
