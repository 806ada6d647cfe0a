package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game to swap the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// layerWorld is the only render layer; HUD widgets draw over it directly.
const layerWorld ecs.LayerID = iota
