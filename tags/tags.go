package tags

import "github.com/yohamta/donburi"

var (
	Actor  = donburi.NewTag().SetName("Actor")
	Target = donburi.NewTag().SetName("Target")
	Level  = donburi.NewTag().SetName("Level")
)
