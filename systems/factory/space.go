package factory

import (
	"github.com/automoto/herotiles/archetypes"
	"github.com/automoto/herotiles/components"
	"github.com/automoto/herotiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the culling space covering the map in pixels, with
// one cell per tile, and its viewport object.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	viewport := resolv.NewObject(0, 0, float64(width), float64(height), tags.ResolvViewport)
	viewport.Data = space
	components.Space.Get(space).Add(viewport)
	components.Viewport.SetValue(space, components.ViewportData{Object: viewport})

	return space
}

// AddToSpace registers an object in the first culling space, if any.
func AddToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj)
}
