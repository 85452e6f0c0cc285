package factory

import (
	"github.com/automoto/herotiles/archetypes"
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/view"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// nextCameraID numbers cameras in creation order; the lowest live ID is
// the fallback when no camera is marked active.
var nextCameraID int

// CreateCamera spawns an orthographic camera looking down at the map from
// StartZ. The first camera created becomes the active one.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	id := nextCameraID
	nextCameraID++

	components.Camera.SetValue(camera, components.CameraData{
		ID:         id,
		Projection: gamemath.Standard2D(float64(cfg.C.Width), float64(cfg.C.Height)),
	})

	home := gamemath.NewTransform(gamemath.Vec3{X: x, Y: y, Z: cfg.Camera.StartZ})
	components.Transform.SetValue(camera, home)
	components.CameraControl.SetValue(camera, components.CameraControlData{
		Mode:   components.ProjectionOrthographic,
		Home:   home,
		OrthoZ: home.Translation.Z,
	})

	if !view.HasActiveCamera(ecs.World) {
		view.SetActiveCamera(ecs.World, camera)
	}
	return camera
}
