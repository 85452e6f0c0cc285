package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Projection maps between screen pixels and world space for a camera with
// a given transform. Screen Y grows downward; cameras look along -Z.
type Projection interface {
	// ScreenRay casts a ray from a screen pixel into the world. diagonal is
	// the screen size in pixels.
	ScreenRay(screen, diagonal dmath.Vec2, t Transform) Ray
	// WorldToScreen projects a world point onto the screen. ok is false for
	// points behind the camera.
	WorldToScreen(p Vec3, diagonal dmath.Vec2, t Transform) (screen dmath.Vec2, ok bool)
}

// ndc converts a screen pixel to normalized device coordinates in [-1, 1],
// with +Y up.
func ndc(screen, diagonal dmath.Vec2) (x, y float64) {
	x = 2*screen.X/diagonal.X - 1
	y = 1 - 2*screen.Y/diagonal.Y
	return x, y
}

// Orthographic is a parallel projection over a view volume in camera space.
type Orthographic struct {
	Left, Right float64
	Bottom, Top float64
	Near, Far   float64
}

// Standard2D returns a pixel-perfect orthographic projection centred on
// the camera for a width x height screen.
func Standard2D(width, height float64) Orthographic {
	return Orthographic{
		Left:   -width / 2,
		Right:  width / 2,
		Bottom: -height / 2,
		Top:    height / 2,
		Near:   0.125,
		Far:    2000,
	}
}

func (o Orthographic) ScreenRay(screen, diagonal dmath.Vec2, t Transform) Ray {
	nx, ny := ndc(screen, diagonal)
	x := o.Left + (nx+1)/2*(o.Right-o.Left)
	y := o.Bottom + (ny+1)/2*(o.Top-o.Bottom)

	near := t.Apply(Vec3{x, y, -o.Near})
	far := t.Apply(Vec3{x, y, -o.Far})
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func (o Orthographic) WorldToScreen(p Vec3, diagonal dmath.Vec2, t Transform) (dmath.Vec2, bool) {
	local := t.Inverse(p)
	if o.Right == o.Left || o.Top == o.Bottom {
		return dmath.Vec2{}, false
	}
	sx := (local.X - o.Left) / (o.Right - o.Left) * diagonal.X
	sy := (o.Top - local.Y) / (o.Top - o.Bottom) * diagonal.Y
	return dmath.NewVec2(sx, sy), true
}

// Perspective is a symmetric pinhole projection.
type Perspective struct {
	Aspect float64
	FovY   float64 // radians
	Near   float64
	Far    float64
}

// Standard3D returns a 60 degree perspective projection for a width x
// height screen.
func Standard3D(width, height float64) Perspective {
	return Perspective{
		Aspect: width / height,
		FovY:   math.Pi / 3,
		Near:   0.1,
		Far:    2000,
	}
}

func (p Perspective) tanHalf() float64 {
	return math.Tan(p.FovY / 2)
}

// DistanceForHeight returns how far from a plane the camera must sit for
// the screen to span height world units of it at unit scale.
func (p Perspective) DistanceForHeight(height float64) float64 {
	return height / (2 * p.tanHalf())
}

func (p Perspective) ScreenRay(screen, diagonal dmath.Vec2, t Transform) Ray {
	nx, ny := ndc(screen, diagonal)
	th := p.tanHalf()
	dir := t.ApplyDir(Vec3{nx * th * p.Aspect, ny * th, -1}).Normalize()
	origin := t.Translation.Add(dir.Scale(p.Near))
	return Ray{Origin: origin, Direction: dir}
}

func (p Perspective) WorldToScreen(w Vec3, diagonal dmath.Vec2, t Transform) (dmath.Vec2, bool) {
	local := t.Inverse(w)
	if local.Z >= 0 {
		return dmath.Vec2{}, false
	}
	th := p.tanHalf()
	depth := -local.Z
	nx := local.X / (depth * th * p.Aspect)
	ny := local.Y / (depth * th)
	sx := (nx + 1) / 2 * diagonal.X
	sy := (1 - ny) / 2 * diagonal.Y
	return dmath.NewVec2(sx, sy), true
}
