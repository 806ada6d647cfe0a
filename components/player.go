package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name string
}

// ModifiersData scales movement speed and attack damage. Both are 1 with
// no ability active.
type ModifiersData struct {
	Speed float64
	Power float64
}

var Player = donburi.NewComponentType[PlayerData]()
var Modifiers = donburi.NewComponentType[ModifiersData]()
