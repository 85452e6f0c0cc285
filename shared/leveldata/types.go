// Package leveldata provides TMX level parsing into tile maps.
// It has no dependencies on ebitengine, pure data only.
package leveldata

import (
	"image"

	"github.com/automoto/herotiles/shared/tilemap"
)

// Level holds everything parsed from a TMX file.
type Level struct {
	Name       string
	Path       string
	Map        *tilemap.Map
	Tilesets   []TilesetInfo
	LayerNames []string // indexed by tile layer (map Z)
	Spawns     []SpawnPoint
}

// TilesetInfo describes how tile GIDs map onto a tileset image.
type TilesetInfo struct {
	Name       string
	FirstGID   uint32
	TileCount  int
	Columns    int
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	ImagePath  string // path within the level filesystem
}

// Owns reports whether gid belongs to this tileset.
func (ts TilesetInfo) Owns(gid uint32) bool {
	return gid >= ts.FirstGID && gid < ts.FirstGID+uint32(ts.TileCount)
}

// TileRect returns the source rectangle of a GID in the tileset image.
func (ts TilesetInfo) TileRect(gid uint32) image.Rectangle {
	id := int(gid - ts.FirstGID)
	columns := ts.Columns
	if columns <= 0 {
		columns = 1
	}
	x := ts.Margin + (id%columns)*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + (id/columns)*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// SpawnPoint is a named position in world space (origin at the map
// centre, +Y up).
type SpawnPoint struct {
	Name string
	X, Y float64
}
