package systems

import (
	"log"

	"github.com/automoto/herotiles/assets"
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartAnimations starts the start animation on every animated entity that
// has nothing playing yet. Entities whose set lacks it are left alone.
func StartAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			return
		}
		if !anim.SetAnimation(cfg.StartAnimation) {
			log.Printf("Warning: Entity %v has no %s animation", e.Entity(), cfg.StartAnimation)
		}
	})
}

// UpdateAnimations advances running animations and points each sprite at
// its current frame.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		anim.CurrentAnimation.Update()

		if !e.HasComponent(components.Sprite) {
			return
		}
		components.Sprite.Get(e).Image = currentFrame(anim)
	})
}

func currentFrame(anim *components.AnimationData) *ebiten.Image {
	frame := anim.CurrentAnimation.Frame()
	if img, ok := anim.CachedFrames[frame]; ok {
		return img
	}
	if anim.SheetPath == "" {
		return nil
	}

	// Fallback to the shared frame cache if not preloaded
	img := assets.GetFrame(anim.SheetPath, frame, anim.FrameWidth, anim.FrameHeight)
	if anim.CachedFrames == nil {
		anim.CachedFrames = make(map[int]*ebiten.Image)
	}
	anim.CachedFrames[frame] = img
	return img
}
