// Package tilemap models a layered grid of fixed-size tiles in world space
// and computes which part of it a camera can see. It has no dependencies on
// ebitengine so it can be tested headless.
package tilemap

import (
	"fmt"
	"math"

	"github.com/automoto/herotiles/shared/gamemath"
)

// Tile is one cell of the map. GID 0 is an empty cell.
type Tile struct {
	GID            uint32
	FlipHorizontal bool
	FlipVertical   bool
	FlipDiagonal   bool
}

// IsNil reports whether the cell holds no tile.
func (t Tile) IsNil() bool {
	return t.GID == 0
}

// Map is a grid of Dimensions tiles, each TileDimensions world units in
// size. The map is centred on the world origin with +Y pointing up, so
// row 0 is the top row and layer 0 the lowest layer.
type Map struct {
	tileDims Point3
	dims     Point3
	tiles    []Tile
}

// New creates an empty map. All dimensions must be positive.
func New(dims, tileDims Point3) (*Map, error) {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		return nil, fmt.Errorf("invalid map dimensions %v", dims)
	}
	if tileDims.X <= 0 || tileDims.Y <= 0 || tileDims.Z <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions %v", tileDims)
	}
	return &Map{
		tileDims: tileDims,
		dims:     dims,
		tiles:    make([]Tile, dims.X*dims.Y*dims.Z),
	}, nil
}

// TileDimensions returns the size of one tile in world units.
func (m *Map) TileDimensions() Point3 {
	return m.tileDims
}

// Dimensions returns the grid extents in tiles.
func (m *Map) Dimensions() Point3 {
	return m.dims
}

// HalfExtents returns half the map's world size per axis.
func (m *Map) HalfExtents() gamemath.Vec3 {
	return gamemath.Vec3{
		X: float64(m.tileDims.X*m.dims.X) / 2,
		Y: float64(m.tileDims.Y*m.dims.Y) / 2,
		Z: float64(m.tileDims.Z*m.dims.Z) / 2,
	}
}

// InBounds reports whether p is a valid tile index.
func (m *Map) InBounds(p Point3) bool {
	return p.X >= 0 && p.X < m.dims.X &&
		p.Y >= 0 && p.Y < m.dims.Y &&
		p.Z >= 0 && p.Z < m.dims.Z
}

// encode flattens a tile index: layer-major, then row, then column.
func (m *Map) encode(p Point3) int {
	return (p.Z*m.dims.Y+p.Y)*m.dims.X + p.X
}

// Get returns the tile at p.
func (m *Map) Get(p Point3) (Tile, bool) {
	if !m.InBounds(p) {
		return Tile{}, false
	}
	return m.tiles[m.encode(p)], true
}

// Set stores a tile at p.
func (m *Map) Set(p Point3, t Tile) error {
	if !m.InBounds(p) {
		return fmt.Errorf("tile %v out of bounds %v", p, m.dims)
	}
	m.tiles[m.encode(p)] = t
	return nil
}

// WorldToTile returns the index of the tile containing a world point, or
// false when the point lies outside the grid.
func (m *Map) WorldToTile(w gamemath.Vec3) (Point3, bool) {
	half := m.HalfExtents()
	p := Point3{
		X: int(math.Floor((w.X + half.X) / float64(m.tileDims.X))),
		Y: int(math.Floor((half.Y - w.Y) / float64(m.tileDims.Y))),
		Z: int(math.Floor((w.Z + half.Z) / float64(m.tileDims.Z))),
	}
	if !m.InBounds(p) {
		return Point3{}, false
	}
	return p, true
}

// TileToWorld returns the world position of a tile's centre.
func (m *Map) TileToWorld(p Point3) gamemath.Vec3 {
	half := m.HalfExtents()
	return gamemath.Vec3{
		X: -half.X + (float64(p.X)+0.5)*float64(m.tileDims.X),
		Y: half.Y - (float64(p.Y)+0.5)*float64(m.tileDims.Y),
		Z: -half.Z + (float64(p.Z)+0.5)*float64(m.tileDims.Z),
	}
}

// TileOrigin returns the world position of a tile's top-left corner on its
// layer's centre plane.
func (m *Map) TileOrigin(p Point3) gamemath.Vec3 {
	c := m.TileToWorld(p)
	return gamemath.Vec3{
		X: c.X - float64(m.tileDims.X)/2,
		Y: c.Y + float64(m.tileDims.Y)/2,
		Z: c.Z,
	}
}

// LayerPlaneZ returns the world Z of the plane through a layer's centre.
func (m *Map) LayerPlaneZ(layer int) float64 {
	return m.TileToWorld(Point3{Z: layer}).Z
}

// Bounds returns the region covering the whole map.
func (m *Map) Bounds() Region {
	return Region{Max: Point3{m.dims.X - 1, m.dims.Y - 1, m.dims.Z - 1}}
}
