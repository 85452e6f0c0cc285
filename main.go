package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/fonts"
	"github.com/automoto/herotiles/scenes"
	"github.com/automoto/herotiles/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
	err    error
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit stops the game at the end of the current update
func (g *Game) Quit(err error) {
	g.quit = true
	if g.err == nil {
		g.err = err
	}
}

func NewGame(levelName string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g, levelName)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		if g.err != nil {
			return g.err
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", config.Map.DefaultLevel, "level to load from assets/levels, without .tmx")
	flag.IntVar(&config.Map.StartLayer, "layer", config.Map.StartLayer, "tile layer to focus on at startup")
	flag.BoolVar(&config.Debug.LogBounds, "debug-bounds", config.Debug.LogBounds, "log the visible tile region whenever it changes")
	flag.BoolVar(&config.Display.ShowHUD, "hud", config.Display.ShowHUD, "show the camera HUD at startup")
	flag.BoolVar(&config.Display.ShowMinimap, "minimap", config.Display.ShowMinimap, "show the minimap at startup")
	flag.BoolVar(&config.Display.Fullscreen, "fullscreen", config.Display.Fullscreen, "start in fullscreen")
	flag.Parse()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(config.Display.Fullscreen)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*levelName)); err != nil {
		log.Fatal(err)
	}
}
