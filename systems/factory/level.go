package factory

import (
	"fmt"

	"github.com/automoto/herotiles/archetypes"
	"github.com/automoto/herotiles/assets"
	"github.com/automoto/herotiles/components"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTileMap spawns the tile map entity for a loaded level, focused on
// startLayer (clamped to the map's layers).
func CreateTileMap(ecs *ecs.ECS, level *assets.Level, startLayer int) (*donburi.Entry, error) {
	if level == nil || level.Data == nil || level.Data.Map == nil {
		return nil, fmt.Errorf("create tile map: level not loaded")
	}
	m := level.Data.Map

	entry := archetypes.TileMap.Spawn(ecs)
	data := components.TileMapData{
		Level:    level.Data,
		Map:      m,
		Overview: level.Overview,
	}
	for _, ts := range level.Data.Tilesets {
		data.Tilesets = append(data.Tilesets, components.TilesetImage{
			Info:  ts,
			Image: level.TilesetImage(ts),
		})
	}
	components.TileMap.SetValue(entry, data)

	layer := gamemath.ClampInt(startLayer, 0, m.Dimensions().Z-1)
	components.CurrentLayer.SetValue(entry, components.CurrentLayerData{Layer: layer})
	components.VisibleRegion.SetValue(entry, components.VisibleRegionData{Region: tilemap.EmptyRegion()})

	td := m.TileDimensions()
	dims := m.Dimensions()
	CreateSpace(ecs, dims.X*td.X, dims.Y*td.Y, td.X, td.Y)

	return entry, nil
}
