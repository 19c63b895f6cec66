// Package controller turns player input into body velocity and a camera
// pose, one tick at a time. It has no I/O and never fails.
package controller

import (
	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Output is everything one tick produced besides the body write-back.
type Output struct {
	Velocity    mgl64.Vec3 // written to the body with wake
	Camera      CameraPose
	MeshVisible bool // the mesh itself follows the body after the physics step

	Jumped        bool
	DashStarted   bool
	CrouchChanged bool
	CameraChanged bool
	MeshChanged   bool
}

// Controller owns the movement and camera rig state of one player.
type Controller struct {
	Player config.PlayerConfig
	Camera config.CameraConfig
	Ground GroundSensor

	Movement MovementState
	Rig      CameraRigState
}

// New returns a standing controller using the velocity ground heuristic.
func New(player config.PlayerConfig, camera config.CameraConfig) *Controller {
	c := &Controller{
		Player: player,
		Camera: camera,
		Ground: VelocityGroundSensor{Epsilon: player.GroundedEpsilon},
	}
	c.Movement.JumpStrength = player.JumpStrength
	c.Rig.MeshVisible = camera.StartMeshVisible
	if camera.StartThirdPerson {
		c.Rig.Mode = ThirdPerson
	}
	return c
}

// Tick runs one controller update against body and returns the result.
// The body's velocity (and on a crouch toggle, its collider) is written
// before Tick returns; the physics world is stepped afterwards by the caller.
func (c *Controller) Tick(in *Input, body Body) Output {
	var out Output

	vel := body.LinearVelocity()
	pose := body.Pose()
	grounded := c.Ground.Grounded(body)

	// 1-2. intent and speed
	intent := horizontalIntent(in)
	horizontal := intent.Mul(c.speed(in))

	// 3-4. dash
	out.DashStarted = c.updateDash(in, intent)
	dashing := c.Movement.Dashing()
	if dashing {
		horizontal = horizontal.Add(c.Movement.DashDirection.Mul(c.Player.DashSpeed))
		c.Movement.DashTimer--
	}

	// 5-6. vertical
	vy := vel.Y()
	if in.Pressed(config.ActionJump) && grounded {
		vy = c.Movement.JumpStrength
		out.Jumped = true
	}

	// 7. crouch toggle
	if c.Movement.CrouchLatch.Fire(in.Pressed(config.ActionCrouchToggle)) {
		c.toggleCrouch(body)
		out.CrouchChanged = true
	}

	// 8. write-back
	out.Velocity = mgl64.Vec3{horizontal.X(), vy, horizontal.Z()}
	body.SetLinearVelocity(out.Velocity, true)

	// 9. camera
	if c.Rig.ModeLatch.Fire(in.Pressed(config.ActionToggleCamera)) {
		c.Rig.Mode = c.Rig.Mode.Toggle()
		out.CameraChanged = true
	}
	c.updateHeadBob(intent, grounded)
	c.updateRoll(in, dashing)
	out.Camera = c.cameraPose(in, pose.Position)

	// 10. mesh
	if c.Rig.MeshLatch.Fire(in.Pressed(config.ActionToggleMesh)) {
		c.Rig.MeshVisible = !c.Rig.MeshVisible
		out.MeshChanged = true
	}
	out.MeshVisible = c.Rig.MeshVisible

	return out
}
