package systems

import (
	"testing"

	"github.com/automoto/verdant/components"
	"github.com/automoto/verdant/shared/collision"
	"github.com/automoto/verdant/shared/gamemath"
	"github.com/automoto/verdant/systems/factory"
	"github.com/automoto/verdant/vfx"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60

var testBounds = collision.Bounds{MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50}

type testWorld struct {
	w      donburi.World
	actor  *donburi.Entry
	ground collision.Provider
	sink   *vfx.Registry
}

func newTestWorld(t *testing.T, patches ...collision.Patch) *testWorld {
	t.Helper()
	if len(patches) == 0 {
		patches = []collision.Patch{{Name: "floor", MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50}}
	}
	ground, err := factory.CreateGround(testBounds, patches)
	require.NoError(t, err)
	return newTestWorldWithGround(t, ground)
}

func newTestWorldWithGround(t *testing.T, ground collision.Provider) *testWorld {
	t.Helper()
	w := donburi.NewWorld()
	sink := vfx.NewRegistry()
	factory.CreateLevel(w, "test", ground, testBounds, sink)
	actor := factory.CreateActor(w, "hero", gamemath.Vec3{}, 1)
	return &testWorld{w: w, actor: actor, ground: ground, sink: sink}
}

// switchableGround is flat ground at y=0 that can be taken away.
type switchableGround struct {
	solid bool
}

func (g *switchableGround) CastDown(origin, dir gamemath.Vec3) []collision.Hit {
	if !g.solid || dir.Y >= 0 || origin.Y < 0 {
		return nil
	}
	return []collision.Hit{{
		Distance: origin.Y,
		Point:    gamemath.Vec3{X: origin.X, Z: origin.Z},
		Normal:   gamemath.Up,
	}}
}

func (tw *testWorld) input(in components.Intents, dt float64) {
	SetInput(tw.actor, in, 0, dt)
}

func (tw *testWorld) step(n int, dt float64) {
	for i := 0; i < n; i++ {
		StepMotion(tw.actor, tw.ground, dt)
	}
}

// settle lets the actor stand still long enough to land and reset its jump
// chain.
func (tw *testWorld) settle() {
	tw.step(60, tick)
}

func (tw *testWorld) kin() *components.KinematicsData {
	return components.Kinematics.Get(tw.actor)
}

func (tw *testWorld) motion() *components.MotionData {
	return components.Motion.Get(tw.actor)
}

func (tw *testWorld) pos() gamemath.Vec3 {
	return components.Transform.Get(tw.actor).Position
}

func (tw *testWorld) target(name string, pos gamemath.Vec3) *donburi.Entry {
	return factory.CreateTarget(tw.w, name, pos)
}

// forward is d units along an unrotated actor's facing.
func forward(d float64) gamemath.Vec3 {
	return gamemath.Vec3{Z: d}
}
