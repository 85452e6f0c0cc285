package components

import (
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/view"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Type aliases so systems can keep using components.Camera etc.
type CameraData = view.CameraData
type ActiveCameraData = view.ActiveCameraData

var (
	Camera       = view.Camera
	Transform    = view.Transform
	ActiveCamera = view.ActiveCamera
)

// ProjectionMode tracks which projection a camera currently uses
type ProjectionMode int

const (
	ProjectionOrthographic ProjectionMode = iota
	ProjectionPerspective
)

func (m ProjectionMode) String() string {
	if m == ProjectionPerspective {
		return "perspective"
	}
	return "orthographic"
}

// CameraControlData holds per-camera state for user control
type CameraControlData struct {
	Mode   ProjectionMode
	Home   gamemath.Transform // Transform restored by a camera reset
	OrthoZ float64            // Z to restore when leaving perspective
}

var CameraControl = donburi.NewComponentType[CameraControlData]()

// CameraTweenData eases a camera back to its home transform
type CameraTweenData struct {
	X, Y, Z, Scale *gween.Tween
}

var CameraTween = donburi.NewComponentType[CameraTweenData]()
