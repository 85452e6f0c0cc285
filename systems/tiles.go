package systems

import (
	"log"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/automoto/herotiles/shared/view"
	"github.com/automoto/herotiles/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var tileDrawOp = &ebiten.DrawImageOptions{}

// currentTileMap returns the tile map entry and its focused layer.
func currentTileMap(world donburi.World) (*donburi.Entry, *components.TileMapData, int, bool) {
	entry, ok := tags.TileMap.First(world)
	if !ok {
		return nil, nil, 0, false
	}
	tm := components.TileMap.Get(entry)
	if tm.Map == nil {
		return nil, nil, 0, false
	}
	return entry, tm, components.CurrentLayer.Get(entry).Layer, true
}

// UpdateVisibleRegion computes the region of the current layer the camera
// sees and stores it for the renderers.
func UpdateVisibleRegion(e *ecs.ECS, screen math.Vec2) {
	entry, tm, layer, ok := currentTileMap(e.World)
	if !ok {
		return
	}
	visible := components.VisibleRegion.Get(entry)

	focus := tilemap.Focus{Layer: layer, PlaneZ: tm.Map.LayerPlaneZ(layer)}
	region, err := tilemap.VisibleBounds(view.ResolveViewer(e.World), screen, tm.Map, focus)

	if cfg.Debug.LogBounds && (region != visible.Region || err != visible.Err) {
		if err != nil {
			log.Printf("Warning: Visible region on layer %d is empty: %v", layer, err)
		} else {
			log.Printf("Visible region on layer %d: %v - %v (%d tiles)", layer, region.Min, region.Max, region.Len())
		}
	}

	visible.Region = region
	visible.Err = err
}

// DrawTiles renders the visible part of every layer from the bottom up to
// the current one.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	bounds := screen.Bounds()
	size := math.NewVec2(float64(bounds.Dx()), float64(bounds.Dy()))
	UpdateVisibleRegion(e, size)

	entry, tm, layer, ok := currentTileMap(e.World)
	if !ok {
		return
	}
	visible := components.VisibleRegion.Get(entry)
	visible.Drawn = 0
	if visible.Region.IsEmpty() {
		return
	}

	viewer := view.ResolveViewer(e.World)
	if viewer == nil {
		return
	}

	for z := 0; z <= layer; z++ {
		visible.Region.AtLayer(z).Each(func(p tilemap.Point3) {
			tile, ok := tm.Map.Get(p)
			if !ok || tile.IsNil() {
				return
			}
			img := tm.TileImage(tile.GID)
			if img == nil {
				return
			}
			if drawTile(screen, img, tile, tm.Map, p, viewer, size) {
				visible.Drawn++
			}
		})
	}
}

// drawTile projects a tile's corners to the screen and stretches the tile
// image between them.
func drawTile(screen, img *ebiten.Image, tile tilemap.Tile, m *tilemap.Map, p tilemap.Point3, viewer *tilemap.Viewer, size math.Vec2) bool {
	td := m.TileDimensions()
	origin := m.TileOrigin(p)
	corner := origin.Add(gamemath.Vec3{X: float64(td.X), Y: -float64(td.Y)})

	topLeft, ok := viewer.Projection.WorldToScreen(origin, size, viewer.Transform)
	if !ok {
		return false
	}
	bottomRight, ok := viewer.Projection.WorldToScreen(corner, size, viewer.Transform)
	if !ok {
		return false
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	sx := (bottomRight.X - topLeft.X) / w
	sy := (bottomRight.Y - topLeft.Y) / h
	if sx <= 0 || sy <= 0 {
		return false
	}

	tileDrawOp.GeoM.Reset()
	applyTileFlips(&tileDrawOp.GeoM, tile, w, h)
	tileDrawOp.GeoM.Scale(sx, sy)
	tileDrawOp.GeoM.Translate(topLeft.X, topLeft.Y)
	screen.DrawImage(img, tileDrawOp)
	return true
}

// applyTileFlips applies Tiled's flip flags in their documented order:
// anti-diagonal first, then horizontal, then vertical.
func applyTileFlips(g *ebiten.GeoM, tile tilemap.Tile, w, h float64) {
	if tile.FlipDiagonal {
		g.SetElement(0, 0, 0)
		g.SetElement(0, 1, 1)
		g.SetElement(1, 0, 1)
		g.SetElement(1, 1, 0)
		w, h = h, w
	}
	if tile.FlipHorizontal {
		g.Scale(-1, 1)
		g.Translate(w, 0)
	}
	if tile.FlipVertical {
		g.Scale(1, -1)
		g.Translate(0, h)
	}
}
