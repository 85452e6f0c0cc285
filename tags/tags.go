package tags

import "github.com/yohamta/donburi"

var (
	Hero    = donburi.NewTag().SetName("Hero")
	TileMap = donburi.NewTag().SetName("TileMap")
	Camera  = donburi.NewTag().SetName("Camera")
)

// Resolv tags for sprite culling
const (
	ResolvSprite   = "sprite"
	ResolvViewport = "viewport"
)
