package factory

import (
	"fmt"

	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the map at levelPath and adds the level entity with its
// floor tiles and sky. Bodies are created separately by CreateScenery.
func CreateLevel(ecs *ecs.ECS, levelPath string) (*donburi.Entry, error) {
	level, err := assets.LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}
	return CreateLevelFrom(ecs, level), nil
}

// CreateLevelFrom adds the level entity for an already decoded map.
func CreateLevelFrom(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Level: level,
		Floor: render.NewFloor(level.HalfSize, cfg.Scene.FloorTile, cfg.Scene.FloorColorA, cfg.Scene.FloorColorB),
		Sky: render.Sky{
			Top:     cfg.Scene.SkyTop,
			Horizon: cfg.Scene.SkyHorizon,
			Sun: render.Light{
				Direction: cfg.Scene.SunDirection.Mul(-1),
				Color:     cfg.Scene.SunColor,
				Ambient:   cfg.Scene.Ambient,
			},
			SunRadius: 18,
		},
	})
	return entry
}

// CreateScenery adds the floor, perimeter and every prop of the level.
func CreateScenery(ecs *ecs.ECS, level *assets.Level) error {
	if _, err := CreateFloor(ecs, level.HalfSize); err != nil {
		return err
	}
	if err := CreatePerimeter(ecs, level.HalfSize); err != nil {
		return err
	}
	for i, spawn := range level.Props {
		if _, err := CreateProp(ecs, spawn); err != nil {
			return fmt.Errorf("prop %d in %s: %w", i, level.Path, err)
		}
	}
	return nil
}
