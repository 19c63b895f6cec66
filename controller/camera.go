package controller

import (
	"math"

	"github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// bobProfile picks the head-bob amplitude and frequency for the movement state.
func (c *Controller) bobProfile() config.HeadBobConfig {
	switch {
	case c.Movement.Crouched:
		return c.Camera.CrouchBob
	case c.Movement.Sprinting:
		return c.Camera.SprintBob
	}
	return c.Camera.WalkBob
}

// updateHeadBob advances the bob phase while walking on the ground and
// eases the shake offset toward the bob target, or back to rest.
func (c *Controller) updateHeadBob(intent mgl64.Vec3, grounded bool) {
	rig := &c.Rig
	if intent.Len() == 0 || !grounded {
		rig.BobPhase = 0
		rig.ShakeOffset = gamemath.LerpVec2(rig.ShakeOffset, mgl64.Vec2{}, c.Camera.BobLerp)
		return
	}

	bob := c.bobProfile()
	rig.BobPhase += bob.Frequency
	target := mgl64.Vec2{
		math.Sin(rig.BobPhase/2) * bob.AmplitudeX,
		math.Sin(rig.BobPhase) * bob.AmplitudeY,
	}
	rig.ShakeOffset = gamemath.LerpVec2(rig.ShakeOffset, target, c.Camera.BobLerp)
}

// updateRoll eases the camera roll toward the strafe lean, or the dash tilt while dashing.
func (c *Controller) updateRoll(in *Input, dashing bool) {
	left := in.Pressed(config.ActionLeft)
	right := in.Pressed(config.ActionRight)

	var target float64
	switch {
	case left && !right:
		target = c.Camera.StrafeRoll
	case right && !left:
		target = -c.Camera.StrafeRoll
	}
	if dashing {
		side := gamemath.RotateY(mgl64.Vec3{1, 0, 0}, in.Yaw)
		target = -c.Camera.DashTilt * c.Movement.DashDirection.Dot(side)
	}
	c.Rig.Roll = gamemath.Lerp(c.Rig.Roll, target, c.Camera.RollLerp)
}

// eyeHeight is the camera offset above the body centre.
func (c *Controller) eyeHeight() float64 {
	if c.Movement.Crouched {
		return c.Player.CrouchEyeHeight
	}
	return c.Player.EyeHeight
}

// cameraPose derives this tick's camera from the body position.
func (c *Controller) cameraPose(in *Input, bodyPos mgl64.Vec3) CameraPose {
	rig := &c.Rig
	if rig.Mode == ThirdPerson {
		desired := bodyPos.Add(gamemath.RotateY(c.Camera.ThirdPersonOffset, in.Yaw))
		if !rig.placed {
			rig.Position = desired
			rig.placed = true
		}
		rig.Position = gamemath.LerpVec3(rig.Position, desired, c.Camera.ThirdPersonLerp)

		target := bodyPos.Add(mgl64.Vec3{0, c.Camera.ThirdPersonLookAtY, 0})
		yaw, pitch := lookAngles(target.Sub(rig.Position))
		return CameraPose{Mode: ThirdPerson, Position: rig.Position, Yaw: yaw, Pitch: pitch}
	}

	side := gamemath.RotateY(mgl64.Vec3{1, 0, 0}, in.Yaw)
	pos := bodyPos.
		Add(mgl64.Vec3{0, c.eyeHeight() + rig.ShakeOffset.Y(), 0}).
		Add(side.Mul(rig.ShakeOffset.X()))
	rig.Position = pos
	rig.placed = true
	return CameraPose{
		Mode:     FirstPerson,
		Position: pos,
		Yaw:      in.Yaw,
		Pitch:    in.Pitch,
		Roll:     rig.Roll,
	}
}
