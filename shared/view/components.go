// Package view holds the camera components and the active-camera lookup.
// Like the rest of shared/ it only depends on donburi, never on ebitengine.
package view

import (
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	ID         int // creation order, used for the fallback lookup
	Projection gamemath.Projection
}

var Camera = donburi.NewComponentType[CameraData]()

var Transform = donburi.NewComponentType[gamemath.Transform]()

// ActiveCameraData names the camera the renderer looks through.
type ActiveCameraData struct {
	Entity donburi.Entity
	Set    bool
}

var ActiveCamera = donburi.NewComponentType[ActiveCameraData]()
