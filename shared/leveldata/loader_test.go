package leveldata

import (
	"image"
	"testing"
	"testing/fstest"

	"github.com/automoto/herotiles/shared/tilemap"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="2">
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" spacing="2" margin="1" tilecount="4" columns="2">
  <image source="terrain.png" width="68" height="68"/>
 </tileset>
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
1,2,3,
4,0,2147483650
</data>
 </layer>
 <layer id="2" name="notes" width="3" height="2" visible="0">
  <data encoding="csv">
1,1,1,
1,1,1
</data>
 </layer>
 <layer id="3" name="decor" width="3" height="2">
  <data encoding="csv">
0,0,0,
0,3,0
</data>
 </layer>
 <objectgroup id="4" name="Spawns">
  <object id="1" name="hero" x="48" y="16"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadTileMap(t *testing.T) {
	level, err := LoadTileMap(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadTileMap: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("expected name %q, got %q", "test", level.Name)
	}
	dims := level.Map.Dimensions()
	if dims != (tilemap.Point3{X: 3, Y: 2, Z: 2}) {
		t.Fatalf("expected 3x2x2 map (hidden layer skipped), got %v", dims)
	}
	if td := level.Map.TileDimensions(); td != (tilemap.Point3{X: 32, Y: 32, Z: 1}) {
		t.Errorf("unexpected tile dimensions %v", td)
	}
	if len(level.LayerNames) != 2 || level.LayerNames[0] != "ground" || level.LayerNames[1] != "decor" {
		t.Errorf("unexpected layer names %v", level.LayerNames)
	}

	tests := []struct {
		p     tilemap.Point3
		gid   uint32
		flipH bool
	}{
		{tilemap.Point3{X: 0, Y: 0, Z: 0}, 1, false},
		{tilemap.Point3{X: 2, Y: 0, Z: 0}, 3, false},
		{tilemap.Point3{X: 1, Y: 1, Z: 0}, 0, false},
		{tilemap.Point3{X: 2, Y: 1, Z: 0}, 2, true},
		{tilemap.Point3{X: 1, Y: 1, Z: 1}, 3, false},
		{tilemap.Point3{X: 0, Y: 0, Z: 1}, 0, false},
	}
	for _, tt := range tests {
		tile, ok := level.Map.Get(tt.p)
		if !ok {
			t.Fatalf("tile %v out of bounds", tt.p)
		}
		if tile.GID != tt.gid || tile.FlipHorizontal != tt.flipH {
			t.Errorf("tile %v: expected gid=%d flipH=%v, got %+v", tt.p, tt.gid, tt.flipH, tile)
		}
	}
}

func TestLoadTileMapTilesets(t *testing.T) {
	level, err := LoadTileMap(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadTileMap: %v", err)
	}
	if len(level.Tilesets) != 1 {
		t.Fatalf("expected 1 tileset, got %d", len(level.Tilesets))
	}

	ts, ok := level.TilesetFor(4)
	if !ok {
		t.Fatal("expected gid 4 to resolve")
	}
	if ts.ImagePath != "levels/terrain.png" {
		t.Errorf("expected image path levels/terrain.png, got %q", ts.ImagePath)
	}
	if got, want := ts.TileRect(4), image.Rect(35, 35, 67, 67); got != want {
		t.Errorf("expected rect %v, got %v", want, got)
	}
	if _, ok := level.TilesetFor(5); ok {
		t.Error("gid 5 is past the tileset and should not resolve")
	}
}

func TestLoadTileMapSpawns(t *testing.T) {
	level, err := LoadTileMap(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadTileMap: %v", err)
	}
	spawn, ok := level.Spawn("hero")
	if !ok {
		t.Fatal("expected hero spawn")
	}
	// 3x2 tiles of 32px: half extents are 48 x 32.
	if spawn.X != 0 || spawn.Y != 16 {
		t.Errorf("expected hero at (0,16), got (%f,%f)", spawn.X, spawn.Y)
	}
}

func TestLoadTileMapMissingFile(t *testing.T) {
	if _, err := LoadTileMap(testFS(), "levels/missing.tmx"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := testFS()
	fsys["levels/another.tmx"] = &fstest.MapFile{Data: []byte(testTMX)}

	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "another" || levels[1].Name != "test" {
		t.Errorf("unexpected levels %v", levels)
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error when no levels exist")
	}
}
