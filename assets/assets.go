package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/verdant/shared/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

// ArenaDir is where arena files live within ArenaFS.
const ArenaDir = "arenas"

// ArenaFS exposes the bundled arenas.
func ArenaFS() fs.FS {
	return arenaFS
}

// LoadArena loads a bundled arena by name, without the .tmx suffix.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(arenaFS, path.Join(ArenaDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return arena, nil
}

// ArenaNames lists the bundled arenas in sorted order.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(arenaFS, ArenaDir)
	return names, err
}
