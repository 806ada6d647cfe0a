package collision

import (
	"math"
	"testing"

	"github.com/automoto/verdant/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var down = gamemath.Vec3{Y: -1}

func testGrid(t *testing.T, patches ...Patch) *Grid {
	t.Helper()
	g, err := NewGrid(Bounds{MinX: -32, MinZ: -32, MaxX: 32, MaxZ: 32}, 4, patches)
	require.NoError(t, err)
	return g
}

func TestCastDownFlatGround(t *testing.T) {
	g := testGrid(t, Patch{Name: "floor", MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10})

	hits := g.CastDown(gamemath.Vec3{X: 1, Y: 0.5, Z: 2}, down)
	require.Len(t, hits, 1)
	assert.InDelta(t, 0.5, hits[0].Distance, 1e-9)
	assert.InDelta(t, 0, hits[0].Point.Y, 1e-9)
	assert.Equal(t, gamemath.Up, hits[0].Normal)
}

func TestCastDownMissOutsideFootprint(t *testing.T) {
	g := testGrid(t, Patch{MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10})

	assert.Empty(t, g.CastDown(gamemath.Vec3{X: 20, Y: 1, Z: 0}, down))
	assert.Empty(t, g.CastDown(gamemath.Vec3{X: 100, Y: 1, Z: 100}, down))
	assert.Empty(t, g.CastDown(gamemath.Vec3{Y: 1}, gamemath.Vec3{}))
}

func TestCastDownIgnoresGroundAbove(t *testing.T) {
	g := testGrid(t, Patch{MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10, Height: 5})

	assert.Empty(t, g.CastDown(gamemath.Vec3{Y: 1}, down))
}

func TestCastDownOrdersNearestFirst(t *testing.T) {
	g := testGrid(t,
		Patch{Name: "low", MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10, Height: -3},
		Patch{Name: "ledge", MinX: -2, MinZ: -2, MaxX: 2, MaxZ: 2, Height: 1},
	)

	hits := g.CastDown(gamemath.Vec3{Y: 2}, down)
	require.Len(t, hits, 2)
	assert.InDelta(t, 1, hits[0].Distance, 1e-9)
	assert.InDelta(t, 5, hits[1].Distance, 1e-9)
}

func TestCastDownSlope(t *testing.T) {
	// Rises one unit per unit of X: a 45 degree ramp.
	ramp := Patch{MinX: 0, MinZ: -5, MaxX: 10, MaxZ: 5, GradX: 1}
	g := testGrid(t, ramp)

	hits := g.CastDown(gamemath.Vec3{X: 4, Y: 10, Z: 0}, down)
	require.Len(t, hits, 1)
	assert.InDelta(t, 4, hits[0].Point.Y, 1e-9)
	assert.InDelta(t, math.Pi/4, gamemath.SlopeAngle(hits[0].Normal), 1e-9)
}

func TestNewGridRejectsEmptyBounds(t *testing.T) {
	_, err := NewGrid(Bounds{}, 4, nil)
	assert.ErrorIs(t, err, ErrEmptyBounds)

	_, err = NewGrid(Bounds{MaxX: 10, MaxZ: 10}, 0, nil)
	assert.ErrorIs(t, err, ErrEmptyBounds)
}

func TestPatchesReturnsCopy(t *testing.T) {
	g := testGrid(t, Patch{Name: "a", MaxX: 1, MaxZ: 1})
	ps := g.Patches()
	ps[0].Name = "changed"
	assert.Equal(t, "a", g.Patches()[0].Name)
}

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(origin, dir gamemath.Vec3) []Hit {
		return []Hit{{Distance: origin.Y}}
	})
	assert.Equal(t, 3.0, p.CastDown(gamemath.Vec3{Y: 3}, down)[0].Distance)
}
