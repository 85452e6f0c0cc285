package tilemap

import (
	"errors"

	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

var (
	// ErrNoCamera is returned when there is no camera to look through.
	ErrNoCamera = errors.New("no camera found")
	// ErrNoIntersection is returned when a corner ray never reaches the
	// drawing plane: it runs parallel to it or the plane is behind the camera.
	ErrNoIntersection = errors.New("screen ray does not reach the drawing plane")
)

// Grid is the part of a tile map the culling code needs.
type Grid interface {
	TileDimensions() Point3
	Dimensions() Point3
	WorldToTile(w gamemath.Vec3) (Point3, bool)
}

// Viewer is a camera resolved for one frame.
type Viewer struct {
	Projection gamemath.Projection
	Transform  gamemath.Transform
}

// Focus selects the depth at which tile visibility is computed.
type Focus struct {
	Layer  int     // tile layer index used when a corner falls off the grid
	PlaneZ float64 // world Z of the drawing plane
}

// ComputeBounds returns the tiles visible through viewer on a screen of the
// given pixel size. Any failure yields an empty region, meaning nothing
// should be drawn this frame.
func ComputeBounds(viewer *Viewer, screen math.Vec2, grid Grid, focus Focus) Region {
	r, err := VisibleBounds(viewer, screen, grid, focus)
	if err != nil {
		return EmptyRegion()
	}
	return r
}

// VisibleBounds is ComputeBounds with the reason for an empty region.
//
// Rays are cast through the top-left and bottom-right screen corners onto
// the drawing plane. The bottom-right hit is pushed one tile further right
// and down so partially visible edge tiles are kept, then clamped inside the
// map so it never names a tile past the last row or column. Corners that
// still land off the grid fall back to the map's first or last tile.
func VisibleBounds(viewer *Viewer, screen math.Vec2, grid Grid, focus Focus) (Region, error) {
	if viewer == nil || viewer.Projection == nil {
		return EmptyRegion(), ErrNoCamera
	}

	plane := gamemath.PlaneWithZ(focus.PlaneZ)
	tileDims := grid.TileDimensions()
	dims := grid.Dimensions()
	tw, th, td := float64(tileDims.X), float64(tileDims.Y), float64(tileDims.Z)

	topLeft, ok := castCorner(viewer, math.NewVec2(0, 0), screen, plane)
	if !ok {
		return EmptyRegion(), ErrNoIntersection
	}
	bottomRight, ok := castCorner(viewer, screen, screen, plane)
	if !ok {
		return EmptyRegion(), ErrNoIntersection
	}
	bottomRight = bottomRight.Add(gamemath.Vec3{X: tw, Y: -th})

	half := gamemath.Vec3{
		X: tw * float64(dims.X) / 2,
		Y: th * float64(dims.Y) / 2,
		Z: td * float64(dims.Z) / 2,
	}
	bottomRight = gamemath.Vec3{
		X: gamemath.Clamp(bottomRight.X, -half.X, half.X-tw),
		Y: gamemath.Clamp(bottomRight.Y, -half.Y+th, half.Y-th),
		Z: gamemath.Clamp(bottomRight.Z, -half.Z, half.Z-td),
	}

	minTile, ok := grid.WorldToTile(topLeft)
	if !ok {
		minTile = Point3{0, 0, focus.Layer}
	}
	maxTile, ok := grid.WorldToTile(bottomRight)
	if !ok {
		maxTile = Point3{dims.X - 1, dims.Y - 1, focus.Layer}
	}

	return NewRegion(minTile, maxTile), nil
}

func castCorner(viewer *Viewer, corner, screen math.Vec2, plane gamemath.Plane) (gamemath.Vec3, bool) {
	ray := viewer.Projection.ScreenRay(corner, screen, viewer.Transform)
	d, ok := ray.IntersectPlane(plane)
	if !ok {
		return gamemath.Vec3{}, false
	}
	return ray.AtDistance(d), true
}
