package tilemap

import (
	"errors"
	"testing"

	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

func orthoViewer(x, y, z, scale float64, w, h float64) *Viewer {
	return &Viewer{
		Projection: gamemath.Standard2D(w, h),
		Transform: gamemath.Transform{
			Translation: gamemath.Vec3{X: x, Y: y, Z: z},
			Scale:       gamemath.Vec3{X: scale, Y: scale, Z: scale},
		},
	}
}

func tenByTen(t *testing.T) *Map {
	return mustMap(t, Point3{10, 10, 1}, Point3{32, 32, 1})
}

func focusOn(m *Map, layer int) Focus {
	return Focus{Layer: layer, PlaneZ: m.LayerPlaneZ(layer)}
}

func TestComputeBoundsNoCamera(t *testing.T) {
	m := tenByTen(t)
	r, err := VisibleBounds(nil, math.NewVec2(320, 320), m, focusOn(m, 0))
	if !errors.Is(err, ErrNoCamera) {
		t.Errorf("expected ErrNoCamera, got %v", err)
	}
	if !r.IsEmpty() {
		t.Errorf("expected empty region, got %+v", r)
	}
	if !ComputeBounds(nil, math.NewVec2(320, 320), m, focusOn(m, 0)).IsEmpty() {
		t.Error("ComputeBounds without a camera must be empty")
	}
}

func TestComputeBoundsFullMap(t *testing.T) {
	m := tenByTen(t)
	screen := math.NewVec2(320, 320)

	r := ComputeBounds(orthoViewer(0, 0, 5, 1, 320, 320), screen, m, focusOn(m, 0))

	want := Region{Min: Point3{0, 0, 0}, Max: Point3{9, 9, 0}}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}

func TestComputeBoundsStaysInsideGrid(t *testing.T) {
	m := tenByTen(t)
	dims := m.Dimensions()

	for _, cam := range []struct{ x, y, scale float64 }{
		{0, 0, 1}, {-400, 0, 1}, {400, 0, 1}, {0, 400, 1}, {0, -400, 1},
		{1000, -1000, 0.5}, {-90, 77, 0.25}, {33, -12, 3}, {150, 150, 0.1},
	} {
		viewer := orthoViewer(cam.x, cam.y, 5, cam.scale, 200, 120)
		r := ComputeBounds(viewer, math.NewVec2(200, 120), m, focusOn(m, 0))
		if r.IsEmpty() {
			t.Errorf("camera %+v: unexpected empty region", cam)
			continue
		}
		if r.Min.X < 0 || r.Min.Y < 0 || r.Min.Z < 0 ||
			r.Max.X > dims.X-1 || r.Max.Y > dims.Y-1 || r.Max.Z > dims.Z-1 {
			t.Errorf("camera %+v: region %+v escapes the grid", cam, r)
		}
		if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y || r.Min.Z > r.Max.Z {
			t.Errorf("camera %+v: region %+v has min above max", cam, r)
		}
	}
}

func TestComputeBoundsFollowsCamera(t *testing.T) {
	m := tenByTen(t)
	screen := math.NewVec2(160, 160)
	tw := float64(m.TileDimensions().X)

	before := ComputeBounds(orthoViewer(0, 0, 5, 1, 160, 160), screen, m, focusOn(m, 0))
	after := ComputeBounds(orthoViewer(tw, 0, 5, 1, 160, 160), screen, m, focusOn(m, 0))

	if after.Min.X != before.Min.X+1 || after.Max.X != before.Max.X+1 {
		t.Errorf("expected x range to shift by one tile: %+v -> %+v", before, after)
	}
	if after.Min.Y != before.Min.Y || after.Max.Y != before.Max.Y {
		t.Errorf("rows should not change: %+v -> %+v", before, after)
	}
}

func TestComputeBoundsClampsAtRightEdge(t *testing.T) {
	m := tenByTen(t)
	screen := math.NewVec2(160, 160)

	r := ComputeBounds(orthoViewer(120, 0, 5, 1, 160, 160), screen, m, focusOn(m, 0))
	if r.Max.X != 9 {
		t.Errorf("expected max column clamped to 9, got %+v", r)
	}
}

func TestComputeBoundsOffGridTopLeft(t *testing.T) {
	m := tenByTen(t)
	screen := math.NewVec2(160, 160)

	r := ComputeBounds(orthoViewer(-200, 200, 5, 1, 160, 160), screen, m, focusOn(m, 0))
	if r.Min != (Point3{0, 0, 0}) {
		t.Errorf("expected min (0,0,0), got %+v", r.Min)
	}
}

func TestComputeBoundsIdempotent(t *testing.T) {
	m := tenByTen(t)
	screen := math.NewVec2(256, 192)
	viewer := orthoViewer(-37, 64, 5, 1.3, 256, 192)

	first := ComputeBounds(viewer, screen, m, focusOn(m, 0))
	second := ComputeBounds(viewer, screen, m, focusOn(m, 0))
	if first != second {
		t.Errorf("expected identical regions, got %+v and %+v", first, second)
	}
}

func TestComputeBoundsPlaneBehindCamera(t *testing.T) {
	m := tenByTen(t)
	viewer := orthoViewer(0, 0, -5, 1, 320, 320)

	r, err := VisibleBounds(viewer, math.NewVec2(320, 320), m, focusOn(m, 0))
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("expected ErrNoIntersection, got %v", err)
	}
	if !r.IsEmpty() {
		t.Errorf("expected empty region, got %+v", r)
	}
}

// sideways looks along +X, so its rays never meet a horizontal plane.
type sideways struct{}

func (sideways) ScreenRay(_, _ math.Vec2, t gamemath.Transform) gamemath.Ray {
	return gamemath.Ray{Origin: t.Translation, Direction: gamemath.Vec3{X: 1}}
}

func (sideways) WorldToScreen(gamemath.Vec3, math.Vec2, gamemath.Transform) (math.Vec2, bool) {
	return math.Vec2{}, false
}

func TestComputeBoundsParallelRay(t *testing.T) {
	m := tenByTen(t)
	viewer := &Viewer{Projection: sideways{}, Transform: gamemath.Identity()}

	_, err := VisibleBounds(viewer, math.NewVec2(320, 320), m, focusOn(m, 0))
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("expected ErrNoIntersection, got %v", err)
	}
}

func TestComputeBoundsUpperLayer(t *testing.T) {
	m := mustMap(t, Point3{10, 10, 3}, Point3{32, 32, 1})
	screen := math.NewVec2(320, 320)

	for layer := 0; layer < 3; layer++ {
		r := ComputeBounds(orthoViewer(0, 0, 10, 1, 320, 320), screen, m, focusOn(m, layer))
		if r.Min.Z != layer || r.Max.Z != layer {
			t.Errorf("layer %d: expected region on that layer, got %+v", layer, r)
		}
	}
}

func TestComputeBoundsPerspective(t *testing.T) {
	m := tenByTen(t)
	proj := gamemath.Standard3D(320, 320)
	viewer := &Viewer{
		Projection: proj,
		Transform:  gamemath.NewTransform(gamemath.Vec3{Z: m.LayerPlaneZ(0) + proj.DistanceForHeight(320)}),
	}

	r := ComputeBounds(viewer, math.NewVec2(320, 320), m, focusOn(m, 0))
	want := Region{Min: Point3{0, 0, 0}, Max: Point3{9, 9, 0}}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}
