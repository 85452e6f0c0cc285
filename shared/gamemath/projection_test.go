package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestOrthographicScreenRayCorners(t *testing.T) {
	proj := Standard2D(320, 240)
	cam := NewTransform(Vec3{0, 0, 5})
	diag := dmath.NewVec2(320, 240)

	tests := []struct {
		name   string
		screen dmath.Vec2
		wantX  float64
		wantY  float64
	}{
		{"top-left", dmath.NewVec2(0, 0), -160, 120},
		{"bottom-right", dmath.NewVec2(320, 240), 160, -120},
		{"centre", dmath.NewVec2(160, 120), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := proj.ScreenRay(tt.screen, diag, cam)
			d, ok := ray.IntersectPlane(PlaneWithZ(0))
			if !ok {
				t.Fatal("expected the ray to hit the plane")
			}
			p := ray.AtDistance(d)
			if !near(p.X, tt.wantX) || !near(p.Y, tt.wantY) || !near(p.Z, 0) {
				t.Errorf("expected (%f,%f,0), got %+v", tt.wantX, tt.wantY, p)
			}
		})
	}
}

func TestOrthographicScaleWidensView(t *testing.T) {
	proj := Standard2D(320, 240)
	cam := Transform{Translation: Vec3{0, 0, 5}, Scale: Vec3{2, 2, 2}}
	diag := dmath.NewVec2(320, 240)

	ray := proj.ScreenRay(dmath.NewVec2(0, 0), diag, cam)
	d, ok := ray.IntersectPlane(PlaneWithZ(0))
	if !ok {
		t.Fatal("expected the ray to hit the plane")
	}
	p := ray.AtDistance(d)
	if !near(p.X, -320) || !near(p.Y, 240) {
		t.Errorf("expected (-320,240), got %+v", p)
	}
}

func TestWorldToScreenInvertsScreenRay(t *testing.T) {
	diag := dmath.NewVec2(640, 360)
	cam := Transform{Translation: Vec3{40, -25, 300}, Scale: Vec3{1.5, 1.5, 1.5}}
	projections := map[string]Projection{
		"orthographic": Standard2D(640, 360),
		"perspective":  Standard3D(640, 360),
	}
	pixels := []dmath.Vec2{
		dmath.NewVec2(0, 0),
		dmath.NewVec2(100, 300),
		dmath.NewVec2(640, 360),
	}

	for name, proj := range projections {
		for _, px := range pixels {
			ray := proj.ScreenRay(px, diag, cam)
			d, ok := ray.IntersectPlane(PlaneWithZ(0))
			if !ok {
				t.Fatalf("%s: expected ray from %+v to hit the plane", name, px)
			}
			back, ok := proj.WorldToScreen(ray.AtDistance(d), diag, cam)
			if !ok {
				t.Fatalf("%s: expected point in front of camera", name)
			}
			if math.Abs(back.X-px.X) > 1e-4 || math.Abs(back.Y-px.Y) > 1e-4 {
				t.Errorf("%s: roundtrip %+v -> %+v", name, px, back)
			}
		}
	}
}

func TestPerspectiveBehindCamera(t *testing.T) {
	proj := Standard3D(640, 360)
	cam := NewTransform(Vec3{0, 0, 5})
	if _, ok := proj.WorldToScreen(Vec3{0, 0, 10}, dmath.NewVec2(640, 360), cam); ok {
		t.Error("a point behind the camera must not project")
	}
}

func TestPerspectiveDistanceForHeight(t *testing.T) {
	proj := Standard3D(640, 360)
	d := proj.DistanceForHeight(360)
	cam := NewTransform(Vec3{0, 0, d})
	diag := dmath.NewVec2(640, 360)

	ray := proj.ScreenRay(dmath.NewVec2(320, 0), diag, cam)
	dist, ok := ray.IntersectPlane(PlaneWithZ(0))
	if !ok {
		t.Fatal("expected the ray to hit the plane")
	}
	if p := ray.AtDistance(dist); math.Abs(p.Y-180) > 1e-6 {
		t.Errorf("expected top edge at y=180, got %f", p.Y)
	}
}
