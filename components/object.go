package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData registers an entity in the culling space. Coordinates are in
// map pixels: origin at the map's top-left corner, +Y down.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// ViewportData is the object standing in for the visible region
type ViewportData struct {
	*resolv.Object
}

var Viewport = donburi.NewComponentType[ViewportData]()
