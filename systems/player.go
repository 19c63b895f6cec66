package systems

import (
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerBody adapts a physics body to the controller's Body interface.
type playerBody struct {
	world  *physics.World
	entry  *donburi.Entry
	handle physics.BodyHandle
}

func (b *playerBody) LinearVelocity() mgl64.Vec3 {
	return b.world.LinearVelocity(b.handle)
}

func (b *playerBody) SetLinearVelocity(v mgl64.Vec3, wake bool) {
	b.world.SetLinearVelocity(b.handle, v, wake)
}

func (b *playerBody) Pose() controller.BodyPose {
	p := b.world.Pose(b.handle)
	return controller.BodyPose{Position: p.Position, Orientation: p.Orientation}
}

// ReplaceCapsule swaps the player's collider and mesh for a capsule of the
// new size. If the new capsule is rejected the previous shape is put back,
// so the body is never left without a collider.
func (b *playerBody) ReplaceCapsule(halfHeight, radius float64) {
	player := components.Player.Get(b.entry)
	body := components.Body.Get(b.entry)
	if err := b.world.RemoveCollider(player.Collider, true); err != nil {
		log.Error().Err(err).Msg("remove player collider")
		return
	}

	shape := physics.Capsule(halfHeight, radius)
	ch, err := b.world.CreateCollider(shape, cfg.Player.Density, b.handle)
	if err != nil {
		log.Error().Err(err).Float64("halfHeight", halfHeight).Msg("create player collider")
		if ch, err = b.world.CreateCollider(body.Shape, cfg.Player.Density, b.handle); err != nil {
			log.Error().Err(err).Msg("restore player collider")
			return
		}
		player.Collider = ch
		return
	}
	player.Collider = ch
	body.Shape = shape
	components.Mesh.Get(b.entry).Mesh = factory.PlayerMesh(halfHeight, radius)
}

// UpdatePlayer runs one controller tick per player before the physics step.
func UpdatePlayer(ecs *ecs.ECS) {
	world := getPhysicsWorld(ecs)
	if world == nil {
		return
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.PlayerInput.Get(entry)
		body := &playerBody{world: world, entry: entry, handle: components.Body.Get(entry).Handle}

		out := player.Controller.Tick(&input.Controller, body)
		player.Last = out

		mesh := components.Mesh.Get(entry)
		mesh.Visible = out.MeshVisible

		if out.CrouchChanged || out.CameraChanged || out.MeshChanged {
			log.Debug().
				Bool("crouched", player.Controller.Movement.Crouched).
				Str("camera", out.Camera.Mode.String()).
				Bool("mesh", out.MeshVisible).
				Msg("player state changed")
		}
		publishTick(ecs, out, player.Controller.Movement.Crouched)
	})
}
