package scenes

import (
	"log"
	"sync"

	"github.com/automoto/herotiles/assets"
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/systems"
	factory2 "github.com/automoto/herotiles/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene shows a loaded level through a user-controlled camera.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *assets.Level
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, level *assets.Level) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Update()

	input, ok := components.Input.First(ws.ecs.World)
	if !ok {
		return
	}
	data := components.Input.Get(input)
	if data.CloseRequested || systems.GetAction(data, cfg.ActionQuit).JustPressed {
		ws.sceneChanger.Quit(nil)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Display.ClearColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateObjects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawTiles)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawMinimap)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	tileMap, err := factory2.CreateTileMap(ecs, ws.level, cfg.Map.StartLayer)
	if err != nil {
		ws.sceneChanger.Quit(err)
		return
	}
	tm := components.TileMap.Get(tileMap)
	layer := components.CurrentLayer.Get(tileMap).Layer

	var spawn gamemath.Vec3
	if sp, ok := tm.Level.Spawn(cfg.Map.HeroSpawn); ok {
		spawn = gamemath.Vec3{X: sp.X, Y: sp.Y}
	} else {
		log.Printf("Warning: No %q spawn in %s, using the map centre", cfg.Map.HeroSpawn, tm.Level.Name)
	}

	factory2.CreateCamera(ecs, spawn.X, spawn.Y)

	spawn.Z = tm.Map.LayerPlaneZ(layer) + cfg.Hero.Depth
	if _, err := factory2.CreateHero(ecs, cfg.Map.HeroSpawn, spawn); err != nil {
		ws.sceneChanger.Quit(err)
		return
	}

	// Loading is complete, start every animation set
	systems.StartAnimations(ecs)

	ws.ecs = ecs
}
