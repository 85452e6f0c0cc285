package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/lafriks/go-tiled"
)

// SpawnGroup is the object group holding spawn points.
const SpawnGroup = "Spawns"

// LoadTileMap parses a TMX file into a Level. Every visible tile layer
// becomes one layer of the tile map, in file order. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS / fstest.MapFS (tools, tests).
func LoadTileMap(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Orientation != "" && levelMap.Orientation != "orthogonal" {
		return nil, fmt.Errorf("load TMX %s: unsupported orientation %q", tmxPath, levelMap.Orientation)
	}

	var layers []*tiled.Layer
	for _, layer := range levelMap.Layers {
		if !layer.Visible {
			continue
		}
		layers = append(layers, layer)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no visible tile layers", tmxPath)
	}

	m, err := tilemap.New(
		tilemap.Point3{X: levelMap.Width, Y: levelMap.Height, Z: len(layers)},
		tilemap.Point3{X: levelMap.TileWidth, Y: levelMap.TileHeight, Z: 1},
	)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path: tmxPath,
		Map:  m,
	}

	for z, layer := range layers {
		level.LayerNames = append(level.LayerNames, layer.Name)
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("load TMX %s: layer %q has %d tiles, want %d",
				tmxPath, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				lt := layer.Tiles[y*levelMap.Width+x]
				if lt == nil || lt.IsNil() || lt.Tileset == nil {
					continue
				}
				tile := tilemap.Tile{
					GID:            lt.Tileset.FirstGID + lt.ID,
					FlipHorizontal: lt.HorizontalFlip,
					FlipVertical:   lt.VerticalFlip,
					FlipDiagonal:   lt.DiagonalFlip,
				}
				if err := m.Set(tilemap.Point3{X: x, Y: y, Z: z}, tile); err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
			}
		}
	}

	dir := path.Dir(tmxPath)
	for _, ts := range levelMap.Tilesets {
		info := TilesetInfo{
			Name:       ts.Name,
			FirstGID:   ts.FirstGID,
			TileCount:  ts.TileCount,
			Columns:    ts.Columns,
			TileWidth:  ts.TileWidth,
			TileHeight: ts.TileHeight,
			Spacing:    ts.Spacing,
			Margin:     ts.Margin,
		}
		if ts.Image != nil {
			base := dir
			if ts.Source != "" {
				// External tilesets resolve images relative to the .tsx file.
				base = path.Dir(path.Join(dir, ts.Source))
			}
			info.ImagePath = path.Join(base, ts.Image.Source)
		}
		level.Tilesets = append(level.Tilesets, info)
	}
	sort.Slice(level.Tilesets, func(i, j int) bool {
		return level.Tilesets[i].FirstGID < level.Tilesets[j].FirstGID
	})

	half := m.HalfExtents()
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.Spawns = append(level.Spawns, SpawnPoint{
				Name: o.Name,
				X:    o.X - half.X,
				Y:    half.Y - o.Y,
			})
		}
	}

	return level, nil
}

// TilesetFor returns the tileset owning gid.
func (l *Level) TilesetFor(gid uint32) (TilesetInfo, bool) {
	for i := len(l.Tilesets) - 1; i >= 0; i-- {
		if l.Tilesets[i].Owns(gid) {
			return l.Tilesets[i], true
		}
	}
	return TilesetInfo{}, false
}

// Spawn returns the spawn point with the given name.
func (l *Level) Spawn(name string) (SpawnPoint, bool) {
	for _, s := range l.Spawns {
		if s.Name == name {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// them, sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadTileMap(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}
