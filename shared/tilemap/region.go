package tilemap

// Point3 is a tile index: column, row and layer.
type Point3 struct {
	X, Y, Z int
}

// Region is an inclusive, axis-aligned range of tile indices.
type Region struct {
	Min, Max Point3
}

// EmptyRegion returns a region containing no tiles.
func EmptyRegion() Region {
	return Region{Min: Point3{1, 1, 1}, Max: Point3{0, 0, 0}}
}

// NewRegion returns the region spanned by two corners, ordered per axis.
func NewRegion(a, b Point3) Region {
	return Region{
		Min: Point3{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)},
		Max: Point3{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)},
	}
}

// IsEmpty reports whether the region holds no tiles.
func (r Region) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y || r.Min.Z > r.Max.Z
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Point3) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y &&
		p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// Len returns the number of tiles in the region.
func (r Region) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return (r.Max.X - r.Min.X + 1) * (r.Max.Y - r.Min.Y + 1) * (r.Max.Z - r.Min.Z + 1)
}

// Each calls fn for every tile in the region, layer by layer, row by row.
func (r Region) Each(fn func(p Point3)) {
	if r.IsEmpty() {
		return
	}
	for z := r.Min.Z; z <= r.Max.Z; z++ {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				fn(Point3{x, y, z})
			}
		}
	}
}

// OnLayer returns the region restricted to a single layer.
func (r Region) OnLayer(z int) Region {
	if r.IsEmpty() || z < r.Min.Z || z > r.Max.Z {
		return EmptyRegion()
	}
	r.Min.Z, r.Max.Z = z, z
	return r
}

// AtLayer returns the region's columns moved onto layer z.
func (r Region) AtLayer(z int) Region {
	if r.IsEmpty() {
		return r
	}
	r.Min.Z, r.Max.Z = z, z
	return r
}
