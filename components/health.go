package components

import "github.com/yohamta/donburi"

// HealthData may dip below zero between a hit and the vitals pass, which
// clamps it and raises Defeated once.
type HealthData struct {
	Current  float64
	Max      float64
	Defeated bool
}

var Health = donburi.NewComponentType[HealthData]()
