package controller

import (
	"github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// horizontalIntent builds the unit movement direction in world space.
// Opposite keys cancel; diagonals are normalised.
func horizontalIntent(in *Input) mgl64.Vec3 {
	var local mgl64.Vec3
	if in.Pressed(config.ActionForward) {
		local[2]--
	}
	if in.Pressed(config.ActionBack) {
		local[2]++
	}
	if in.Pressed(config.ActionLeft) {
		local[0]--
	}
	if in.Pressed(config.ActionRight) {
		local[0]++
	}
	if local.Len() == 0 {
		return mgl64.Vec3{}
	}
	return gamemath.RotateY(local.Normalize(), in.Yaw)
}

// speed picks the base speed for this tick and derives the sprint flag.
func (c *Controller) speed(in *Input) float64 {
	c.Movement.Sprinting = in.Pressed(config.ActionSprint) && !c.Movement.Crouched
	if c.Movement.Crouched {
		return c.Player.CrouchSpeed
	}
	if c.Movement.Sprinting {
		return c.Player.WalkSpeed * c.Player.SprintMultiplier
	}
	return c.Player.WalkSpeed
}

// updateDash starts a dash on a fresh press. A press while dashing or
// standing still is consumed without effect.
func (c *Controller) updateDash(in *Input, intent mgl64.Vec3) bool {
	if !c.Movement.DashLatch.Fire(in.Pressed(config.ActionDash)) {
		return false
	}
	if c.Movement.DashTimer > 0 || intent.Len() == 0 || c.Player.DashDuration <= 0 {
		return false
	}
	c.Movement.DashDirection = mgl64.Vec3{intent.X(), 0, intent.Z()}.Normalize()
	c.Movement.DashTimer = c.Player.DashDuration
	return true
}

// toggleCrouch flips the crouch state, resizes the collider and swaps the jump strength.
func (c *Controller) toggleCrouch(body Body) {
	m := &c.Movement
	m.Crouched = !m.Crouched
	height := c.Player.StandHeight
	m.JumpStrength = c.Player.JumpStrength
	if m.Crouched {
		height = c.Player.CrouchHeight
		m.JumpStrength = c.Player.CrouchJumpStrength
		m.Sprinting = false
	}
	body.ReplaceCapsule(height/2, c.Player.Radius)
}
