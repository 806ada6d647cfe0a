// Package leveldata parses Tiled arena files into ground patches and spawn
// points. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"github.com/automoto/verdant/shared/collision"
)

// SpawnKind says what a spawn point creates.
type SpawnKind string

const (
	SpawnActor  SpawnKind = "actor"
	SpawnTarget SpawnKind = "target"
)

// Arena holds everything static about one arena. Distances are in world
// units: one Tiled tile is one unit, map X is world X and map Y is world Z.
type Arena struct {
	Name   string
	Bounds collision.Bounds
	Ground []collision.Patch
	Spawns []SpawnPoint
}

// SpawnPoint places an actor or target. Y is its elevation.
type SpawnPoint struct {
	Kind    SpawnKind
	Name    string
	X, Y, Z float64
}

// ActorSpawn returns the first actor spawn.
func (a *Arena) ActorSpawn() (SpawnPoint, bool) {
	for _, s := range a.Spawns {
		if s.Kind == SpawnActor {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

// TargetSpawns returns every target spawn in file order.
func (a *Arena) TargetSpawns() []SpawnPoint {
	var out []SpawnPoint
	for _, s := range a.Spawns {
		if s.Kind == SpawnTarget {
			out = append(out, s)
		}
	}
	return out
}
