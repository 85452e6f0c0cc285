package factory

import (
	"fmt"

	"github.com/automoto/herotiles/assets"
	"github.com/automoto/herotiles/assets/animations"
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds an entity's animation set from the definitions
// registered under key, slicing frames out of a single horizontal strip.
// No animation is started; that happens once loading completes.
func GenerateAnimations(key, sheetPath string, frameWidth, frameHeight int) (*components.AnimationData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions for %q", key)
	}

	sheet, err := assets.LoadSheet(sheetPath)
	if err != nil {
		return nil, err
	}
	columns := sheet.Bounds().Dx() / frameWidth

	animData := &components.AnimationData{
		SpriteSheet:  sheet,
		SheetPath:    sheetPath,
		Animations:   make(map[cfg.AnimationID]*animations.Animation),
		CachedFrames: make(map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}

	for id, def := range defs {
		if def.Last >= columns {
			return nil, fmt.Errorf("animation %s of %q ends at frame %d, sheet has %d", id, key, def.Last, columns)
		}
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = def.End == cfg.EndStay
		animData.Animations[id] = anim

		// Pre-calculate frames
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			animData.CachedFrames[i] = assets.GetFrame(sheetPath, i, frameWidth, frameHeight)
		}
	}

	return animData, nil
}
