package components

import "github.com/yohamta/donburi"

// TargetData marks a training dummy the actor can hit.
type TargetData struct {
	Name   string
	Stun   float64 // seconds remaining
	Radius float64
}

var Target = donburi.NewComponentType[TargetData]()
