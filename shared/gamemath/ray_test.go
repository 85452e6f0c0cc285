package gamemath

import (
	"math"
	"testing"
)

func TestIntersectPlane(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		planeZ float64
		wantOK bool
		wantD  float64
	}{
		{"straight down", Ray{Vec3{0, 0, 5}, Vec3{0, 0, -1}}, 0, true, 5},
		{"plane above origin", Ray{Vec3{0, 0, 5}, Vec3{0, 0, -1}}, 7, false, 0},
		{"parallel", Ray{Vec3{0, 0, 5}, Vec3{1, 0, 0}}, 0, false, 0},
		{"origin on plane", Ray{Vec3{3, 4, 2}, Vec3{0, 0, -1}}, 2, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := tt.ray.IntersectPlane(PlaneWithZ(tt.planeZ))
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && math.Abs(d-tt.wantD) > 1e-9 {
				t.Errorf("expected distance %f, got %f", tt.wantD, d)
			}
		})
	}
}

func TestAtDistance(t *testing.T) {
	r := Ray{Origin: Vec3{1, 2, 10}, Direction: Vec3{0, 0, -1}}
	got := r.AtDistance(4)
	if got != (Vec3{1, 2, 6}) {
		t.Errorf("expected (1,2,6), got %+v", got)
	}
}

func TestTransformRoundtrip(t *testing.T) {
	tr := Transform{Translation: Vec3{10, -4, 5}, Scale: Vec3{2, 2, 2}}
	p := Vec3{3, 7, -1}
	back := tr.Inverse(tr.Apply(p))
	if back.Sub(p).Len() > 1e-9 {
		t.Errorf("roundtrip failed: %+v -> %+v", p, back)
	}
}

func TestAddScaleClamps(t *testing.T) {
	tr := Identity()
	tr.AddScale(-5, 0.1, 4)
	if tr.Scale != (Vec3{0.1, 0.1, 0.1}) {
		t.Errorf("expected scale clamped to 0.1, got %+v", tr.Scale)
	}
	tr.AddScale(10, 0.1, 4)
	if tr.Scale != (Vec3{4, 4, 4}) {
		t.Errorf("expected scale clamped to 4, got %+v", tr.Scale)
	}
}
