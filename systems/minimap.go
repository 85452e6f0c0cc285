package systems

import (
	"image/color"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var minimapOp = &ebiten.DrawImageOptions{}

// DrawMinimap shows the pre-rendered map in the top-right corner with the
// visible region and sprites marked on it.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowMinimap {
		return
	}
	entry, tm, _, ok := currentTileMap(ecs.World)
	if !ok || tm.Overview == nil {
		return
	}

	ow := float64(tm.Overview.Bounds().Dx())
	oh := float64(tm.Overview.Bounds().Dy())
	longest := max(ow, oh)
	if longest <= 0 {
		return
	}
	scale := float64(cfg.HUD.MinimapMaxSize) / longest
	x := float64(screen.Bounds().Dx()) - ow*scale - cfg.HUD.MinimapMargin
	y := cfg.HUD.MinimapMargin

	vector.DrawFilledRect(screen, float32(x-1), float32(y-1), float32(ow*scale+2), float32(oh*scale+2), cfg.HUD.BackgroundColor, false)

	minimapOp.GeoM.Reset()
	minimapOp.ColorScale.Reset()
	minimapOp.GeoM.Scale(scale, scale)
	minimapOp.GeoM.Translate(x, y)
	minimapOp.ColorScale.ScaleAlpha(cfg.HUD.MinimapOpacity)
	screen.DrawImage(tm.Overview, minimapOp)

	// Sprites registered in the culling space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvSprite) {
				continue
			}
			cx := x + (obj.X+obj.W/2)*scale
			cy := y + (obj.Y+obj.H/2)*scale
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), 2, color.RGBA{R: 255, A: 255}, false)
		}
	}

	region := components.VisibleRegion.Get(entry).Region
	if region.IsEmpty() {
		return
	}
	td := tm.Map.TileDimensions()
	rx := x + float64(region.Min.X*td.X)*scale
	ry := y + float64(region.Min.Y*td.Y)*scale
	rw := float64((region.Max.X-region.Min.X+1)*td.X) * scale
	rh := float64((region.Max.Y-region.Min.Y+1)*td.Y) * scale
	vector.StrokeRect(screen, float32(rx), float32(ry), float32(rw), float32(rh), 1, cfg.HUD.MinimapViewport, false)
}
