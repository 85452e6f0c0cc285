package scenes

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/automoto/herotiles/assets"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// loadSteps is how many steps the loader reports through progress.
const loadSteps = 2

type loadResult struct {
	level *assets.Level
	err   error
}

// LoadingScene loads the level off the main loop and hands over to the
// world scene once everything is ready.
type LoadingScene struct {
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
	progress     atomic.Int32
	done         chan loadResult
	ticks        int
}

func NewLoadingScene(sc SceneChanger, levelName string) *LoadingScene {
	return &LoadingScene{
		sceneChanger: sc,
		levelName:    levelName,
		done:         make(chan loadResult, 1),
	}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(func() {
		go ls.load()
	})
	ls.ticks++

	select {
	case res := <-ls.done:
		if res.err != nil {
			log.Printf("Failed to load level %s: %v", ls.levelName, res.err)
			ls.sceneChanger.Quit(res.err)
			return
		}
		ls.sceneChanger.ChangeScene(NewWorldScene(ls.sceneChanger, res.level))
	default:
	}
}

// load runs on its own goroutine and never touches an ECS world.
func (ls *LoadingScene) load() {
	level, err := assets.LoadLevel(cfg.Map.LevelsDir, ls.levelName)
	if err != nil {
		ls.done <- loadResult{err: err}
		return
	}
	ls.progress.Add(1)

	if _, err := assets.LoadSheet(cfg.Hero.SheetPath); err != nil {
		ls.done <- loadResult{err: fmt.Errorf("hero sheet: %w", err)}
		return
	}
	ls.progress.Add(1)

	ls.done <- loadResult{level: level}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	dots := strings.Repeat(".", (ls.ticks/20)%4)
	msg := fmt.Sprintf("Loading%s %d/%d", dots, ls.progress.Load(), loadSteps)

	face := fonts.Title.Get()
	b := text.BoundString(face, msg)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	y := screen.Bounds().Dy() / 2
	text.Draw(screen, msg, face, x, y, cfg.White)
}
