package controller

import (
	"math"
	"testing"

	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraToggleAlternatesPerPress(t *testing.T) {
	c, body := newTestController()
	press := hold(config.ActionToggleCamera)

	want := []CameraMode{ThirdPerson, FirstPerson, ThirdPerson}
	for i, mode := range want {
		out := c.Tick(press, body)
		assert.True(t, out.CameraChanged, "press %d", i)
		assert.Equal(t, mode, out.Camera.Mode)

		out = c.Tick(press, body)
		assert.False(t, out.CameraChanged, "held key does not toggle again")
		assert.Equal(t, mode, out.Camera.Mode)

		c.Tick(&Input{}, body)
	}
}

func TestThirdPersonLooksAtBody(t *testing.T) {
	c, body := newTestController()
	c.Rig.Mode = ThirdPerson

	in := &Input{Yaw: 0.8}
	out := c.Tick(in, body)

	want := body.pos.Add(mgl64.Vec3{5 * math.Sin(0.8), 2, 5 * math.Cos(0.8)})
	assert.InDelta(t, 0, out.Camera.Position.Sub(want).Len(), 1e-9, "first placement snaps")

	target := body.pos.Add(mgl64.Vec3{0, 0.5, 0})
	dir := target.Sub(out.Camera.Position).Normalize()
	assert.InDelta(t, 0, out.Camera.Forward().Sub(dir).Len(), 1e-9)
	assert.Zero(t, out.Camera.Roll)
}

func TestThirdPersonSmoothsTowardBody(t *testing.T) {
	c, body := newTestController()
	c.Rig.Mode = ThirdPerson

	first := c.Tick(&Input{}, body).Camera.Position

	body.pos = body.pos.Add(mgl64.Vec3{4, 0, 0})
	second := c.Tick(&Input{}, body).Camera.Position

	assert.InDelta(t, first.X()+1, second.X(), 1e-9, "moves a quarter of the way")
	assert.InDelta(t, first.Y(), second.Y(), 1e-9)
	assert.InDelta(t, first.Z(), second.Z(), 1e-9)
}

func TestFirstPersonFollowsLook(t *testing.T) {
	c, body := newTestController()
	in := &Input{Yaw: 0.3, Pitch: -0.2}

	out := c.Tick(in, body)
	assert.Equal(t, FirstPerson, out.Camera.Mode)
	assert.Equal(t, 0.3, out.Camera.Yaw)
	assert.Equal(t, -0.2, out.Camera.Pitch)
}

func TestCrouchLowersEye(t *testing.T) {
	c, body := newTestController()
	out := c.Tick(hold(config.ActionCrouchToggle), body)
	assert.InDelta(t, 2.3, out.Camera.Position.Y(), 1e-12)
}

func TestHeadBobWhileWalking(t *testing.T) {
	c, body := newTestController()

	c.Tick(hold(config.ActionForward), body)
	assert.InDelta(t, 0.2, c.Rig.BobPhase, 1e-12)
	assert.InDelta(t, 0.2*math.Sin(0.1)*0.02, c.Rig.ShakeOffset.X(), 1e-12)
	assert.InDelta(t, 0.2*math.Sin(0.2)*0.05, c.Rig.ShakeOffset.Y(), 1e-12)

	for i := 0; i < 10; i++ {
		c.Tick(hold(config.ActionForward), body)
	}
	moving := c.Rig.ShakeOffset.Len()
	require.NotZero(t, moving)

	c.Tick(&Input{}, body)
	assert.Zero(t, c.Rig.BobPhase)
	assert.Less(t, c.Rig.ShakeOffset.Len(), moving, "eases back to rest")
}

func TestHeadBobPausedInAir(t *testing.T) {
	c, body := newTestController()
	body.vel = mgl64.Vec3{0, 3, 0}

	c.Tick(hold(config.ActionForward), body)
	assert.Zero(t, c.Rig.BobPhase)
	assert.Equal(t, mgl64.Vec2{}, c.Rig.ShakeOffset)
}

func TestSprintBobsFaster(t *testing.T) {
	c, body := newTestController()
	c.Tick(hold(config.ActionForward, config.ActionSprint), body)
	assert.InDelta(t, 0.3, c.Rig.BobPhase, 1e-12)
}

func TestStrafeRoll(t *testing.T) {
	c, body := newTestController()

	c.Tick(hold(config.ActionLeft), body)
	assert.InDelta(t, 0.02, c.Rig.Roll, 1e-12)

	c, body = newTestController()
	c.Tick(hold(config.ActionRight), body)
	assert.InDelta(t, -0.02, c.Rig.Roll, 1e-12)

	c.Tick(hold(config.ActionLeft, config.ActionRight), body)
	assert.InDelta(t, -0.01, c.Rig.Roll, 1e-12, "opposite keys ease back to level")
}

func TestDashTiltOverridesStrafe(t *testing.T) {
	c, body := newTestController()

	c.Tick(hold(config.ActionRight, config.ActionDash), body)
	assert.InDelta(t, -0.05, c.Rig.Roll, 1e-12)

	c, body = newTestController()
	c.Tick(hold(config.ActionForward, config.ActionDash), body)
	assert.InDelta(t, 0, c.Rig.Roll, 1e-12, "dashing straight ahead does not tilt")
}

func TestPoseOrientation(t *testing.T) {
	pose := CameraPose{}
	assert.InDelta(t, 0, pose.Forward().Sub(mgl64.Vec3{0, 0, -1}).Len(), 1e-12)
	assert.InDelta(t, 0, pose.Up().Sub(mgl64.Vec3{0, 1, 0}).Len(), 1e-12)

	pose.Yaw = math.Pi / 2
	assert.InDelta(t, 0, pose.Forward().Sub(mgl64.Vec3{-1, 0, 0}).Len(), 1e-12, "positive yaw turns left")

	pose = CameraPose{Pitch: math.Pi / 2}
	assert.InDelta(t, 0, pose.Forward().Sub(mgl64.Vec3{0, 1, 0}).Len(), 1e-12)
}

func TestCameraModeString(t *testing.T) {
	assert.Equal(t, "first person", FirstPerson.String())
	assert.Equal(t, "third person", ThirdPerson.String())
	assert.Equal(t, FirstPerson, ThirdPerson.Toggle())
}
