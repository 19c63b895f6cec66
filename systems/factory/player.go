package factory

import (
	"fmt"

	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSensor asks the physics world whether the body rests on something.
type contactSensor struct {
	world  *physics.World
	handle physics.BodyHandle
}

func (s contactSensor) Grounded(controller.Body) bool {
	return s.world.Grounded(s.handle)
}

// PlayerMesh builds the visual capsule for a collider of the given size.
func PlayerMesh(halfHeight, radius float64) *render.Mesh {
	return render.Capsule(halfHeight, radius, 12, 4, cfg.LightBlue)
}

// CreatePlayer adds the standing player capsule at the spawn point.
func CreatePlayer(ecs *ecs.ECS, spawn assets.PlayerSpawn) (*donburi.Entry, error) {
	halfHeight := cfg.Player.StandHeight / 2
	shape := physics.Capsule(halfHeight, cfg.Player.Radius)
	pos := mgl64.Vec3{spawn.X, shape.Extents().Y(), spawn.Z}

	world := physicsWorld(ecs)
	handle := world.CreateRigidBody(physics.Dynamic, pos, true)
	collider, err := world.CreateCollider(shape, cfg.Player.Density, handle)
	if err != nil {
		return nil, fmt.Errorf("create player collider: %w", err)
	}

	ctrl := controller.New(cfg.Player, cfg.Camera)
	if cfg.Player.GroundSensor == cfg.GroundSensorContact {
		ctrl.Ground = contactSensor{world: world, handle: handle}
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Collider:   collider,
		Spawn:      pos,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})
	components.Body.SetValue(player, components.BodyData{Handle: handle, Shape: shape})
	components.Mesh.SetValue(player, components.MeshData{
		Mesh:        PlayerMesh(halfHeight, cfg.Player.Radius),
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		Visible:     cfg.Camera.StartMeshVisible,
	})
	return player, nil
}
