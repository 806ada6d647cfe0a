package factory

import (
	"fmt"

	cfg "github.com/automoto/verdant/config"
	"github.com/automoto/verdant/shared/collision"
)

// CreateGround builds the broadphase ground grid for an arena using the
// configured cell size and ray length.
func CreateGround(bounds collision.Bounds, patches []collision.Patch) (*collision.Grid, error) {
	grid, err := collision.NewGrid(bounds, cfg.Collision.CellSize, patches)
	if err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}
	grid.SetMaxCast(cfg.Physics.MaxCast)
	return grid, nil
}
