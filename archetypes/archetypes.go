package archetypes

import (
	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
		components.CameraControl,
	)
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Transform,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	TileMap = newArchetype(
		tags.TileMap,
		components.TileMap,
		components.CurrentLayer,
		components.VisibleRegion,
	)
	Space = newArchetype(
		components.Space,
		components.Viewport,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
