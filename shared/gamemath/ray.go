package gamemath

import "math"

// epsilon below which a ray is treated as parallel to a plane.
const epsilon = 1e-9

// Plane is the set of points p with Normal·p == Offset.
type Plane struct {
	Normal Vec3
	Offset float64
}

// PlaneWithZ returns the horizontal plane at height z.
func PlaneWithZ(z float64) Plane {
	return Plane{Normal: Vec3{0, 0, 1}, Offset: z}
}

// Ray is a half-line in world space. Direction is expected to be normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// IntersectPlane returns the distance along the ray at which it meets p.
// ok is false when the ray runs parallel to the plane or the plane lies
// behind the origin.
func (r Ray) IntersectPlane(p Plane) (distance float64, ok bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	t := (p.Offset - p.Normal.Dot(r.Origin)) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// AtDistance returns the point d units along the ray.
func (r Ray) AtDistance(d float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(d))
}
