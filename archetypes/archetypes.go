package archetypes

import (
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Input,
		components.Animator,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
		components.Health,
		components.Flash,
	)
	Gap = newArchetype(
		tags.Gap,
		components.Gap,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.AutoDestroy,
	)
	Footprint = newArchetype(
		tags.Footprint,
		components.Footprint,
	)
	Session = newArchetype(
		components.Pause,
		components.Settings,
		components.Stats,
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
