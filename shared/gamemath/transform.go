package gamemath

// Transform places an entity in the world. Cameras only pan and zoom, so
// there is no rotation.
type Transform struct {
	Translation Vec3
	Scale       Vec3
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// NewTransform returns a unit-scale transform at position p.
func NewTransform(p Vec3) Transform {
	return Transform{Translation: p, Scale: Vec3{1, 1, 1}}
}

// Apply maps a local point into world space.
func (t Transform) Apply(local Vec3) Vec3 {
	return local.Mul(t.Scale).Add(t.Translation)
}

// ApplyDir maps a local direction into world space, ignoring translation.
func (t Transform) ApplyDir(dir Vec3) Vec3 {
	return dir.Mul(t.Scale)
}

// Inverse maps a world point into local space.
func (t Transform) Inverse(world Vec3) Vec3 {
	return world.Sub(t.Translation).Div(t.Scale)
}

// PrependTranslation moves the transform by d in world units.
func (t *Transform) PrependTranslation(d Vec3) {
	t.Translation = t.Translation.Add(d)
}

// AddScale grows the scale uniformly by s, keeping every axis within
// [lo, hi].
func (t *Transform) AddScale(s, lo, hi float64) {
	t.Scale = Vec3{
		X: Clamp(t.Scale.X+s, lo, hi),
		Y: Clamp(t.Scale.Y+s, lo, hi),
		Z: Clamp(t.Scale.Z+s, lo, hi),
	}
}
