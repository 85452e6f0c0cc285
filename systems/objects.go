package systems

import (
	"github.com/automoto/herotiles/components"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every sprite's culling object to its world position
// and fits the viewport object to the visible region.
func UpdateObjects(ecs *ecs.ECS) {
	_, tm, _, ok := currentTileMap(ecs.World)
	if !ok {
		return
	}
	m := tm.Map

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		obj := components.Object.Get(e)
		px, py := WorldToMapPixels(m, components.Transform.Get(e).Translation)

		pivotX, pivotY := 0.5, 0.5
		if e.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(e)
			pivotX, pivotY = sprite.PivotX, sprite.PivotY
		}
		obj.X = px - obj.W*pivotX
		obj.Y = py - obj.H*pivotY
		obj.Update()
	})

	updateViewport(ecs)
}

func updateViewport(ecs *ecs.ECS) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)

	tmEntry, tm, _, ok := currentTileMap(ecs.World)
	if !ok {
		return
	}
	region := components.VisibleRegion.Get(tmEntry).Region
	if region.IsEmpty() {
		vp.W, vp.H = 0, 0
		vp.Update()
		return
	}

	td := tm.Map.TileDimensions()
	vp.X = float64(region.Min.X * td.X)
	vp.Y = float64(region.Min.Y * td.Y)
	vp.W = float64((region.Max.X - region.Min.X + 1) * td.X)
	vp.H = float64((region.Max.Y - region.Min.Y + 1) * td.Y)
	vp.Update()
}

// WorldToMapPixels converts a world position to map pixels, with the origin
// at the map's top-left corner and +Y down.
func WorldToMapPixels(m *tilemap.Map, w gamemath.Vec3) (float64, float64) {
	half := m.HalfExtents()
	return w.X + half.X, half.Y - w.Y
}
