package collision

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/automoto/verdant/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags used inside the grid space.
const (
	TagGround = "ground"
	TagRay    = "ray"
)

// DefaultMaxCast bounds ray length when the caller does not set one.
const DefaultMaxCast = 64.0

// ErrEmptyBounds is returned by NewGrid for a zero-area arena or cell size.
var ErrEmptyBounds = errors.New("collision: empty grid bounds")

// Bounds is the XZ rectangle the grid covers.
type Bounds struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Grid buckets ground patches in a resolv space laid over the XZ plane so a
// ray only tests the patches under its footprint.
type Grid struct {
	bounds  Bounds
	space   *resolv.Space
	ray     *resolv.Object
	patches []Patch
	maxCast float64
}

// NewGrid builds the broadphase for patches over bounds. cellSize is in
// world units.
func NewGrid(bounds Bounds, cellSize int, patches []Patch) (*Grid, error) {
	w := int(math.Ceil(bounds.MaxX - bounds.MinX))
	h := int(math.Ceil(bounds.MaxZ - bounds.MinZ))
	if w <= 0 || h <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %gx%g cell %d", ErrEmptyBounds,
			bounds.MaxX-bounds.MinX, bounds.MaxZ-bounds.MinZ, cellSize)
	}

	g := &Grid{
		bounds:  bounds,
		space:   resolv.NewSpace(w, h, cellSize, cellSize),
		patches: make([]Patch, len(patches)),
		maxCast: DefaultMaxCast,
	}
	copy(g.patches, patches)

	for i, p := range g.patches {
		if p.MaxX < p.MinX || p.MaxZ < p.MinZ {
			return nil, fmt.Errorf("collision: patch %q has inverted footprint", p.Name)
		}
		obj := g.newObject(p.MinX, p.MinZ, p.MaxX-p.MinX, p.MaxZ-p.MinZ, TagGround)
		obj.Data = i
		g.space.Add(obj)
	}

	g.ray = g.newObject(bounds.MinX, bounds.MinZ, 1, 1, TagRay)
	g.space.Add(g.ray)

	return g, nil
}

// SetMaxCast limits how far CastDown looks along the ray.
func (g *Grid) SetMaxCast(d float64) {
	if d > 0 {
		g.maxCast = d
	}
}

// Patches returns a copy of the ground the grid was built from.
func (g *Grid) Patches() []Patch {
	out := make([]Patch, len(g.patches))
	copy(out, g.patches)
	return out
}

// CastDown returns every patch the ray crosses within the cast distance,
// nearest first. A degenerate direction or a ray outside the grid is a miss.
func (g *Grid) CastDown(origin, dir gamemath.Vec3) []Hit {
	dir = dir.Normalize()
	if dir.LenSq() < gamemath.Epsilon || !origin.IsFinite() {
		return nil
	}

	end := origin.Add(dir.Scale(g.maxCast))
	minX, maxX := math.Min(origin.X, end.X), math.Max(origin.X, end.X)
	minZ, maxZ := math.Min(origin.Z, end.Z), math.Max(origin.Z, end.Z)

	// Pad the footprint so a vertical ray still covers a cell.
	const pad = 0.01
	g.ray.X = minX - g.bounds.MinX - pad
	g.ray.Y = minZ - g.bounds.MinZ - pad
	g.ray.W = maxX - minX + 2*pad
	g.ray.H = maxZ - minZ + 2*pad
	g.ray.Update()

	check := g.ray.Check(0, 0, TagGround)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool, len(check.Objects))
	var hits []Hit
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		if hit, ok := g.patches[idx].Intersect(origin, dir, g.maxCast); ok {
			hits = append(hits, hit)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (g *Grid) newObject(x, z, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-g.bounds.MinX, z-g.bounds.MinZ, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
