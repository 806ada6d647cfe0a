package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/verdant/shared/collision"
	"github.com/lafriks/go-tiled"
)

// Object group names read from arena files.
const (
	GroundGroup = "Ground"
	SpawnGroup  = "Spawns"
)

var (
	ErrNoGround = errors.New("arena has no ground")
	ErrNoSpawn  = errors.New("arena has no actor spawn")
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
//
// Ground is the "Ground" object group: each rectangle is a patch whose
// surface is set by the float properties height, gradX and gradZ. Spawns
// is the "Spawns" object group; an object's class (or type) is "actor" or
// "target" and its elevation property is the spawn height.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width %d", tmxPath, levelMap.TileWidth)
	}

	unit := float64(levelMap.TileWidth)
	arena := &Arena{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Bounds: collision.Bounds{
			MaxX: float64(levelMap.Width*levelMap.TileWidth) / unit,
			MaxZ: float64(levelMap.Height*levelMap.TileHeight) / unit,
		},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroundGroup:
			for _, o := range og.Objects {
				arena.Ground = append(arena.Ground, collision.Patch{
					Name:   o.Name,
					MinX:   o.X / unit,
					MinZ:   o.Y / unit,
					MaxX:   (o.X + o.Width) / unit,
					MaxZ:   (o.Y + o.Height) / unit,
					Height: o.Properties.GetFloat("height"),
					GradX:  o.Properties.GetFloat("gradX"),
					GradZ:  o.Properties.GetFloat("gradZ"),
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				switch SpawnKind(kind) {
				case SpawnActor, SpawnTarget:
				default:
					continue
				}
				arena.Spawns = append(arena.Spawns, SpawnPoint{
					Kind: SpawnKind(kind),
					Name: o.Name,
					X:    o.X / unit,
					Y:    o.Properties.GetFloat("elevation"),
					Z:    o.Y / unit,
				})
			}
		}
	}

	if len(arena.Ground) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoGround)
	}
	if _, ok := arena.ActorSpawn(); !ok {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
