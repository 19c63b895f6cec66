package archetypes

import (
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Body,
		components.Mesh,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Prop,
		components.Body,
		components.Mesh,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Mesh,
	)
	Physics = newArchetype(
		components.Physics,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Toast = newArchetype(
		components.Toast,
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
