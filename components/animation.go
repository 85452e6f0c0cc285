package components

import (
	"github.com/automoto/herotiles/assets/animations"
	"github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData is an entity's animation set plus the control running on it.
// CurrentAnimation stays nil until loading completes and the start
// animation is triggered.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	Current          config.AnimationID
	SpriteSheet      *ebiten.Image
	SheetPath        string
	CachedFrames     map[int]*ebiten.Image
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.AnimationID]*animations.Animation
}

// SetAnimation starts the animation with the given id from its first frame.
// It reports false when the set has no such animation.
func (a *AnimationData) SetAnimation(id config.AnimationID) bool {
	anim, ok := a.Animations[id]
	if !ok {
		return false
	}
	if a.CurrentAnimation == anim && a.Current == id {
		return true
	}
	a.CurrentAnimation = anim
	a.Current = id
	anim.Restart()
	anim.Looped = false
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
