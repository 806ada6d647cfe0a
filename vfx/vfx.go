// Package vfx is the boundary between the simulation and whatever draws
// transient visuals. The simulation only issues requests; it never reads
// anything back except the handle it needs to move or remove a visual.
package vfx

import (
	"sort"

	"github.com/automoto/verdant/shared/gamemath"
)

type Kind int

const (
	LeafSwirl Kind = iota
	Flame
	HitSpark
	GustWave
)

func (k Kind) String() string {
	switch k {
	case LeafSwirl:
		return "leaf-swirl"
	case Flame:
		return "flame"
	case HitSpark:
		return "hit-spark"
	case GustWave:
		return "gust"
	}
	return "unknown"
}

// Handle identifies a spawned visual. The zero Handle is never issued.
type Handle uint64

// Sink receives visual requests. Implementations must tolerate Move and
// Remove on handles they no longer know.
type Sink interface {
	Spawn(kind Kind, pos gamemath.Vec3) Handle
	Move(h Handle, pos gamemath.Vec3, scale float64)
	Remove(h Handle)
}

// Nop discards every request.
type Nop struct{}

func (Nop) Spawn(Kind, gamemath.Vec3) Handle    { return 0 }
func (Nop) Move(Handle, gamemath.Vec3, float64) {}
func (Nop) Remove(Handle)                       {}

// Visual is one live entry in a Registry.
type Visual struct {
	Handle Handle
	Kind   Kind
	Pos    gamemath.Vec3
	Scale  float64
}

// Registry keeps live visuals in memory so a renderer (or a test) can
// inspect them.
type Registry struct {
	next   Handle
	live   map[Handle]*Visual
	spawns int
}

func NewRegistry() *Registry {
	return &Registry{live: make(map[Handle]*Visual)}
}

func (r *Registry) Spawn(kind Kind, pos gamemath.Vec3) Handle {
	r.next++
	r.spawns++
	r.live[r.next] = &Visual{Handle: r.next, Kind: kind, Pos: pos, Scale: 1}
	return r.next
}

func (r *Registry) Move(h Handle, pos gamemath.Vec3, scale float64) {
	if v, ok := r.live[h]; ok {
		v.Pos = pos
		v.Scale = scale
	}
}

func (r *Registry) Remove(h Handle) {
	delete(r.live, h)
}

// Live returns a snapshot of live visuals ordered by handle.
func (r *Registry) Live() []Visual {
	out := make([]Visual, 0, len(r.live))
	for _, v := range r.live {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Count returns how many visuals of kind are live.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, v := range r.live {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Spawned is the total number of Spawn calls.
func (r *Registry) Spawned() int {
	return r.spawns
}
