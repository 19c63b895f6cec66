package factory

import (
	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysics adds the scene's rigid-body world.
func CreatePhysics(ecs *ecs.ECS, config cfg.PhysicsConfig) *donburi.Entry {
	entry := archetypes.Physics.Spawn(ecs)
	components.Physics.SetValue(entry, components.PhysicsData{World: physics.NewWorld(config)})
	return entry
}

// physicsWorld returns the world created by CreatePhysics.
func physicsWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		panic("factory: physics world must be created first")
	}
	return components.Physics.Get(entry).World
}
