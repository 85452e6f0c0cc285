package systems

import (
	"log"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/shared/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the active camera from the camera axes and handles the
// reset, projection and layer actions.
func UpdateCamera(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionLayerUp).JustPressed {
		changeLayer(e, 1)
	}
	if GetAction(input, cfg.ActionLayerDown).JustPressed {
		changeLayer(e, -1)
	}

	cameraEntry, ok := view.FindCamera(e.World)
	if !ok {
		return
	}
	if GetAction(input, cfg.ActionToggleProjection).JustPressed {
		toggleProjection(e, cameraEntry)
	}
	if GetAction(input, cfg.ActionResetCamera).JustPressed {
		startCameraReset(e, cameraEntry)
	}

	x := GetAxis(input, cfg.AxisCameraX)
	y := GetAxis(input, cfg.AxisCameraY)
	z := GetAxis(input, cfg.AxisCameraZ)
	scale := GetAxis(input, cfg.AxisCameraScale)

	if x == 0 && y == 0 && z == 0 && scale == 0 {
		updateCameraTween(cameraEntry)
		return
	}

	// Manual movement cancels a running reset
	if cameraEntry.HasComponent(components.CameraTween) {
		cameraEntry.RemoveComponent(components.CameraTween)
	}

	// Fetched after any component changes moved the entry's storage
	transform := components.Transform.Get(cameraEntry)
	transform.PrependTranslation(gamemath.Vec3{
		X: x * cfg.Camera.PanSpeed,
		Y: y * cfg.Camera.PanSpeed,
		Z: z * cfg.Camera.DepthSpeed,
	})
	if scale != 0 {
		transform.AddScale(cfg.Camera.ZoomStep*scale, cfg.Camera.MinScale, cfg.Camera.MaxScale)
	}
}

// startCameraReset eases the camera back to its home transform.
func startCameraReset(e *ecs.ECS, cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.CameraControl) {
		return
	}
	control := components.CameraControl.Get(cameraEntry)
	current := components.Transform.Get(cameraEntry)

	home := control.Home
	if persp, ok := components.Camera.Get(cameraEntry).Projection.(gamemath.Perspective); ok {
		// Home is stored for the orthographic camera
		control.OrthoZ = home.Translation.Z
		home.Translation.Z = planeZ(e) + persp.DistanceForHeight(float64(cfg.C.Height)*home.Scale.Y)
	}

	d := cfg.Camera.ResetDuration
	tween := components.CameraTweenData{
		X:     gween.New(float32(current.Translation.X), float32(home.Translation.X), d, ease.OutCubic),
		Y:     gween.New(float32(current.Translation.Y), float32(home.Translation.Y), d, ease.OutCubic),
		Z:     gween.New(float32(current.Translation.Z), float32(home.Translation.Z), d, ease.OutCubic),
		Scale: gween.New(float32(current.Scale.X), float32(home.Scale.X), d, ease.OutCubic),
	}
	if !cameraEntry.HasComponent(components.CameraTween) {
		cameraEntry.AddComponent(components.CameraTween)
	}
	components.CameraTween.SetValue(cameraEntry, tween)
}

func updateCameraTween(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.CameraTween) {
		return
	}
	tween := components.CameraTween.Get(cameraEntry)
	transform := components.Transform.Get(cameraEntry)
	dt := float32(1 / float64(ebiten.TPS()))

	x, doneX := tween.X.Update(dt)
	y, doneY := tween.Y.Update(dt)
	z, doneZ := tween.Z.Update(dt)
	s, doneS := tween.Scale.Update(dt)

	transform.Translation = gamemath.Vec3{X: float64(x), Y: float64(y), Z: float64(z)}
	transform.Scale = gamemath.Vec3{X: float64(s), Y: float64(s), Z: float64(s)}

	if doneX && doneY && doneZ && doneS {
		cameraEntry.RemoveComponent(components.CameraTween)
	}
}

// toggleProjection swaps between orthographic and perspective, keeping
// the visible height at the current drawing plane.
func toggleProjection(e *ecs.ECS, cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.CameraControl) {
		return
	}
	control := components.CameraControl.Get(cameraEntry)
	camera := components.Camera.Get(cameraEntry)
	transform := components.Transform.Get(cameraEntry)
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	switch control.Mode {
	case components.ProjectionOrthographic:
		persp := gamemath.Standard3D(width, height)
		control.OrthoZ = transform.Translation.Z
		transform.Translation.Z = planeZ(e) + persp.DistanceForHeight(height*transform.Scale.Y)
		camera.Projection = persp
		control.Mode = components.ProjectionPerspective
	case components.ProjectionPerspective:
		transform.Translation.Z = control.OrthoZ
		camera.Projection = gamemath.Standard2D(width, height)
		control.Mode = components.ProjectionOrthographic
	}

	log.Printf("Camera %d projection: %s", camera.ID, control.Mode)

	// A running reset would fight the new depth
	if cameraEntry.HasComponent(components.CameraTween) {
		cameraEntry.RemoveComponent(components.CameraTween)
	}
}

// changeLayer moves the current tile layer by delta, clamped to the map.
func changeLayer(e *ecs.ECS, delta int) {
	entry, tm, layer, ok := currentTileMap(e.World)
	if !ok {
		return
	}
	top := tm.Map.Dimensions().Z - 1
	next := gamemath.ClampInt(layer+delta, 0, top)
	if next == layer {
		return
	}
	components.CurrentLayer.Get(entry).Layer = next
}

// planeZ is the world Z of the current drawing plane, or 0 without a map.
func planeZ(e *ecs.ECS) float64 {
	if _, tm, layer, ok := currentTileMap(e.World); ok {
		return tm.Map.LayerPlaneZ(layer)
	}
	return 0
}
