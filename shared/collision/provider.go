// Package collision answers downward ray queries against static arena ground.
// Ground is immutable once built; the motion step only reads it.
package collision

import "github.com/automoto/verdant/shared/gamemath"

// Hit is one ray/surface intersection.
type Hit struct {
	Distance float64
	Point    gamemath.Vec3
	Normal   gamemath.Vec3
}

// Provider casts rays against world ground. Results are ordered nearest
// first; an empty result is a miss.
type Provider interface {
	CastDown(origin, dir gamemath.Vec3) []Hit
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(origin, dir gamemath.Vec3) []Hit

func (f ProviderFunc) CastDown(origin, dir gamemath.Vec3) []Hit {
	return f(origin, dir)
}

// Patch is a rectangular piece of planar ground on the XZ footprint
// [MinX,MaxX]x[MinZ,MaxZ]. Height is the surface Y at (MinX, MinZ); the
// surface rises GradX per unit of X and GradZ per unit of Z.
type Patch struct {
	Name       string
	MinX, MinZ float64
	MaxX, MaxZ float64
	Height     float64
	GradX      float64
	GradZ      float64
}

// HeightAt returns the surface height of the patch plane at (x, z).
func (p Patch) HeightAt(x, z float64) float64 {
	return p.Height + p.GradX*(x-p.MinX) + p.GradZ*(z-p.MinZ)
}

// Normal is the upward unit normal of the patch plane.
func (p Patch) Normal() gamemath.Vec3 {
	return gamemath.Vec3{X: -p.GradX, Y: 1, Z: -p.GradZ}.Normalize()
}

// Contains reports whether (x, z) lies on the footprint, edges included.
func (p Patch) Contains(x, z float64) bool {
	return x >= p.MinX && x <= p.MaxX && z >= p.MinZ && z <= p.MaxZ
}

// Intersect casts a ray (dir must be unit length) against the patch and
// reports the hit within maxDist.
func (p Patch) Intersect(origin, dir gamemath.Vec3, maxDist float64) (Hit, bool) {
	denom := dir.Y - p.GradX*dir.X - p.GradZ*dir.Z
	if denom*denom < gamemath.Epsilon {
		return Hit{}, false
	}
	above := origin.Y - p.HeightAt(origin.X, origin.Z)
	t := -above / denom
	if t < 0 || t > maxDist {
		return Hit{}, false
	}
	point := origin.Add(dir.Scale(t))
	if !p.Contains(point.X, point.Z) {
		return Hit{}, false
	}
	return Hit{Distance: t, Point: point, Normal: p.Normal()}, true
}
