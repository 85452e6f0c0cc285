package factory

import (
	"github.com/automoto/herotiles/archetypes"
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/shared/gamemath"
	"github.com/automoto/herotiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHero spawns the hero prefab at a world position.
func CreateHero(ecs *ecs.ECS, spawnName string, pos gamemath.Vec3) (*donburi.Entry, error) {
	animData, err := GenerateAnimations("hero", cfg.Hero.SheetPath, cfg.Hero.FrameWidth, cfg.Hero.FrameHeight)
	if err != nil {
		return nil, err
	}

	hero := archetypes.Hero.Spawn(ecs)
	components.Hero.SetValue(hero, components.HeroData{SpawnName: spawnName})
	components.Transform.SetValue(hero, gamemath.NewTransform(pos))
	components.Animation.Set(hero, animData)
	components.Sprite.SetValue(hero, components.SpriteData{
		Image:  animData.CachedFrames[0],
		PivotX: 0.5,
		PivotY: 1,
	})

	obj := resolv.NewObject(0, 0, float64(cfg.Hero.FrameWidth), float64(cfg.Hero.FrameHeight))
	obj.AddTags(tags.ResolvSprite)
	obj.Data = hero
	components.Object.SetValue(hero, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	return hero, nil
}
