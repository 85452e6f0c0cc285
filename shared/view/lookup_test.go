package view

import (
	"testing"

	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/yohamta/donburi"
)

func spawnCamera(w donburi.World, id int, x float64) *donburi.Entry {
	entry := w.Entry(w.Create(Camera, Transform))
	Camera.SetValue(entry, CameraData{ID: id, Projection: gamemath.Standard2D(320, 240)})
	Transform.SetValue(entry, gamemath.NewTransform(gamemath.Vec3{X: x, Z: 5}))
	return entry
}

func TestFindCameraNone(t *testing.T) {
	w := donburi.NewWorld()
	if _, ok := FindCamera(w); ok {
		t.Error("expected no camera in an empty world")
	}
	if ResolveViewer(w) != nil {
		t.Error("expected nil viewer in an empty world")
	}
}

func TestFindCameraFallsBackToLowestID(t *testing.T) {
	w := donburi.NewWorld()
	spawnCamera(w, 3, 30)
	first := spawnCamera(w, 1, 10)
	spawnCamera(w, 2, 20)

	got, ok := FindCamera(w)
	if !ok {
		t.Fatal("expected a camera")
	}
	if got.Entity() != first.Entity() {
		t.Errorf("expected camera with ID 1, got ID %d", Camera.Get(got).ID)
	}
}

func TestFindCameraPrefersActive(t *testing.T) {
	w := donburi.NewWorld()
	spawnCamera(w, 1, 10)
	active := spawnCamera(w, 2, 20)
	if HasActiveCamera(w) {
		t.Fatal("no camera marked active yet")
	}
	SetActiveCamera(w, active)
	if !HasActiveCamera(w) {
		t.Fatal("expected an active camera")
	}

	viewer := ResolveViewer(w)
	if viewer == nil {
		t.Fatal("expected a viewer")
	}
	if viewer.Transform.Translation.X != 20 {
		t.Errorf("expected active camera at x=20, got %f", viewer.Transform.Translation.X)
	}

	ClearActiveCamera(w)
	if got, _ := FindCamera(w); Camera.Get(got).ID != 1 {
		t.Errorf("expected fallback to ID 1 after clearing, got %d", Camera.Get(got).ID)
	}
}

func TestFindCameraIgnoresRemovedActive(t *testing.T) {
	w := donburi.NewWorld()
	fallback := spawnCamera(w, 1, 10)
	active := spawnCamera(w, 2, 20)
	SetActiveCamera(w, active)
	w.Remove(active.Entity())
	if HasActiveCamera(w) {
		t.Error("removed camera still reported active")
	}

	got, ok := FindCamera(w)
	if !ok || got.Entity() != fallback.Entity() {
		t.Error("expected fallback camera once the active one is removed")
	}
}
