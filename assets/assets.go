package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/herotiles/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelsFS exposes the embedded levels for tools that only need map data.
func LevelsFS() fs.FS {
	return levelFS
}

// Level is a parsed map together with the images needed to draw it.
type Level struct {
	Data *leveldata.Level
	// Tileset images keyed by TilesetInfo.ImagePath
	Images map[string]*ebiten.Image
	// Whole map rendered once, used by the minimap. Nil if rendering failed.
	Overview *ebiten.Image
}

// TilesetImage returns the image for a tileset, or nil when it failed to load.
func (l *Level) TilesetImage(ts leveldata.TilesetInfo) *ebiten.Image {
	return l.Images[ts.ImagePath]
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes an embedded image, caching it by path.
func (l *AnimationLoader) LoadImage(imgPath string) (*ebiten.Image, error) {
	if img, ok := l.cache[imgPath]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(imgPath)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", imgPath, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", imgPath, err)
	}

	l.cache[imgPath] = img
	return img, nil
}

func (l *AnimationLoader) MustLoadImage(imgPath string) *ebiten.Image {
	img, err := l.LoadImage(imgPath)
	if err != nil {
		panic(err)
	}
	return img
}

// GetFrame returns a cached sub-image for one frame of a sprite sheet.
func (l *AnimationLoader) GetFrame(sheetPath string, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", sheetPath, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

// LoadSheet loads a sprite sheet from the embedded images.
func LoadSheet(sheetPath string) (*ebiten.Image, error) {
	return animationLoader.LoadImage(sheetPath)
}

// GetFrame slices frame i out of a horizontal strip of w×h frames.
func GetFrame(sheetPath string, i, w, h int) *ebiten.Image {
	sx := i * w
	return animationLoader.GetFrame(sheetPath, i, image.Rect(sx, 0, sx+w, h))
}

// LoadLevel parses levels/<name>.tmx and decodes its tileset images.
func LoadLevel(levelsDir, name string) (*Level, error) {
	tmxPath := path.Join(levelsDir, name+".tmx")
	data, err := leveldata.LoadTileMap(levelFS, tmxPath)
	if err != nil {
		return nil, err
	}
	return newLevel(data)
}

// LoadLevels loads every level in levelsDir, sorted by path.
func LoadLevels(levelsDir string) ([]*Level, error) {
	all, err := leveldata.LoadAllLevels(levelFS, levelsDir)
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(all))
	for _, data := range all {
		level, err := newLevel(data)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func newLevel(data *leveldata.Level) (*Level, error) {
	level := &Level{
		Data:   data,
		Images: make(map[string]*ebiten.Image),
	}

	for _, ts := range data.Tilesets {
		if _, ok := level.Images[ts.ImagePath]; ok {
			continue
		}
		imgBytes, err := fs.ReadFile(levelFS, ts.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("tileset %s: %w", ts.Name, err)
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			return nil, fmt.Errorf("tileset %s: %w", ts.Name, err)
		}
		level.Images[ts.ImagePath] = img
	}

	overview, err := renderOverview(data.Path)
	if err != nil {
		// The minimap is optional, the level still plays without it
		log.Printf("Warning: Failed to render overview for %s: %v", data.Name, err)
	}
	level.Overview = overview

	return level, nil
}

func renderOverview(tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, levelFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render layers: %w", err)
	}
	return ebiten.NewImageFromImage(renderer.Result), nil
}
