package systems

import (
	"github.com/automoto/herotiles/components"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/automoto/herotiles/shared/view"
	"github.com/automoto/herotiles/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawSprites renders the sprites whose culling objects touch the viewport.
// The viewport is fitted to the visible region, so sprites outside it are
// skipped without projecting them.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	viewer := view.ResolveViewer(ecs.World)
	if viewer == nil {
		return
	}
	// The region was just recomputed by DrawTiles
	updateViewport(ecs)

	vpEntry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	if vp.W <= 0 || vp.H <= 0 {
		return
	}

	check := vp.Check(0, 0, tags.ResolvSprite)
	if check == nil {
		return
	}

	bounds := screen.Bounds()
	size := math.NewVec2(float64(bounds.Dx()), float64(bounds.Dy()))

	for _, obj := range check.Objects {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !e.HasComponent(components.Sprite) {
			continue
		}
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			continue
		}
		drawSprite(screen, sprite, components.Transform.Get(e).Translation, viewer, size)
	}
}

// drawSprite draws an image anchored at its pivot, sized by how large one
// world unit appears at the sprite's depth.
func drawSprite(screen *ebiten.Image, sprite *components.SpriteData, pos gamemath.Vec3, viewer *tilemap.Viewer, size math.Vec2) {
	anchor, ok := viewer.Projection.WorldToScreen(pos, size, viewer.Transform)
	if !ok {
		return
	}
	unit, ok := viewer.Projection.WorldToScreen(pos.Add(gamemath.Vec3{X: 1}), size, viewer.Transform)
	if !ok {
		return
	}
	scale := unit.X - anchor.X
	if scale <= 0 {
		return
	}

	w := float64(sprite.Image.Bounds().Dx())
	h := float64(sprite.Image.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-w*sprite.PivotX, -h*sprite.PivotY)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(anchor.X, anchor.Y)
	screen.DrawImage(sprite.Image, drawOp)
}
