package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64 // 0..1 of the frame width
	PivotY float64 // 0..1 of the frame height
}

var Sprite = donburi.NewComponentType[SpriteData]()
