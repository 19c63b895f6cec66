package systems

import (
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getPhysicsWorld returns the scene's rigid-body world, or nil before setup.
func getPhysicsWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry).World
}

// UpdatePhysics advances the world by one fixed step and respawns anything
// that fell off the yard.
func UpdatePhysics(ecs *ecs.ECS) {
	world := getPhysicsWorld(ecs)
	if world == nil {
		return
	}
	world.Step()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		handle := components.Body.Get(e).Handle
		pos := world.Pose(handle).Position
		if pos.Y() >= cfg.Physics.KillPlaneY {
			return
		}

		spawn, ok := respawnPoint(e)
		if !ok {
			return
		}
		world.SetPosition(handle, spawn)
		world.SetLinearVelocity(handle, mgl64.Vec3{}, true)
		log.Debug().Int("entity", int(e.Entity().Id())).Msg("respawned fallen body")
	})
}

func respawnPoint(e *donburi.Entry) (mgl64.Vec3, bool) {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Spawn, true
	case e.HasComponent(components.Prop):
		return components.Prop.Get(e).Spawn, true
	}
	return mgl64.Vec3{}, false
}

// SyncMeshes copies every body's pose onto its visual transform.
func SyncMeshes(ecs *ecs.ECS) {
	world := getPhysicsWorld(ecs)
	if world == nil {
		return
	}

	components.Mesh.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		pose := world.Pose(components.Body.Get(e).Handle)
		mesh := components.Mesh.Get(e)
		mesh.Position = pose.Position
		mesh.Orientation = pose.Orientation
	})
}
