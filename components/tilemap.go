package components

import (
	"github.com/automoto/herotiles/shared/leveldata"
	"github.com/automoto/herotiles/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TilesetImage pairs a tileset with its decoded image
type TilesetImage struct {
	Info  leveldata.TilesetInfo
	Image *ebiten.Image
}

type TileMapData struct {
	Level    *leveldata.Level
	Map      *tilemap.Map
	Tilesets []TilesetImage
	Overview *ebiten.Image // Whole map pre-rendered for the minimap

	// Sub-images keyed by GID, filled lazily by the tile renderer
	frameCache map[uint32]*ebiten.Image
}

// TileImage returns the image for a GID, slicing and caching it on first use.
func (t *TileMapData) TileImage(gid uint32) *ebiten.Image {
	if img, ok := t.frameCache[gid]; ok {
		return img
	}
	for i := len(t.Tilesets) - 1; i >= 0; i-- {
		ts := t.Tilesets[i]
		if !ts.Info.Owns(gid) || ts.Image == nil {
			continue
		}
		if t.frameCache == nil {
			t.frameCache = make(map[uint32]*ebiten.Image)
		}
		img := ts.Image.SubImage(ts.Info.TileRect(gid)).(*ebiten.Image)
		t.frameCache[gid] = img
		return img
	}
	return nil
}

var TileMap = donburi.NewComponentType[TileMapData]()

// CurrentLayerData is the tile layer the camera focuses on
type CurrentLayerData struct {
	Layer int
}

var CurrentLayer = donburi.NewComponentType[CurrentLayerData]()

// VisibleRegionData is the region computed for the current frame
type VisibleRegionData struct {
	Region tilemap.Region
	Err    error // Why the region is empty, if it is
	Drawn  int   // Tiles drawn this frame
}

var VisibleRegion = donburi.NewComponentType[VisibleRegionData]()
