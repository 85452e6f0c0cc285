package view

import (
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var cameraQuery = donburi.NewQuery(filter.Contains(Camera, Transform))

// FindCamera returns the active camera when one is set and still carries a
// Camera and Transform, otherwise the camera with the lowest ID.
func FindCamera(world donburi.World) (*donburi.Entry, bool) {
	if entry, ok := activeCamera(world); ok {
		return entry, true
	}

	var best *donburi.Entry
	cameraQuery.Each(world, func(entry *donburi.Entry) {
		if best == nil || Camera.Get(entry).ID < Camera.Get(best).ID {
			best = entry
		}
	})
	return best, best != nil
}

func activeCamera(world donburi.World) (*donburi.Entry, bool) {
	entry, ok := ActiveCamera.First(world)
	if !ok {
		return nil, false
	}
	active := ActiveCamera.Get(entry)
	if !active.Set || !world.Valid(active.Entity) {
		return nil, false
	}
	cam := world.Entry(active.Entity)
	if !cam.HasComponent(Camera) || !cam.HasComponent(Transform) {
		return nil, false
	}
	return cam, true
}

// HasActiveCamera reports whether a live camera is marked active.
func HasActiveCamera(world donburi.World) bool {
	_, ok := activeCamera(world)
	return ok
}

// SetActiveCamera makes camera the one FindCamera returns.
func SetActiveCamera(world donburi.World, camera *donburi.Entry) {
	entry, ok := ActiveCamera.First(world)
	if !ok {
		entry = world.Entry(world.Create(ActiveCamera))
	}
	ActiveCamera.SetValue(entry, ActiveCameraData{Entity: camera.Entity(), Set: true})
}

// ClearActiveCamera makes FindCamera fall back to the lowest camera ID.
func ClearActiveCamera(world donburi.World) {
	if entry, ok := ActiveCamera.First(world); ok {
		ActiveCamera.SetValue(entry, ActiveCameraData{})
	}
}

// ResolveViewer returns the camera to look through this frame, or nil.
func ResolveViewer(world donburi.World) *tilemap.Viewer {
	entry, ok := FindCamera(world)
	if !ok {
		return nil
	}
	return &tilemap.Viewer{
		Projection: Camera.Get(entry).Projection,
		Transform:  *Transform.Get(entry),
	}
}
