package controller

import (
	"math"
	"testing"

	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBody struct {
	vel      mgl64.Vec3
	pos      mgl64.Vec3
	writes   int
	capsules [][2]float64
}

func (b *fakeBody) LinearVelocity() mgl64.Vec3 { return b.vel }

func (b *fakeBody) SetLinearVelocity(v mgl64.Vec3, wake bool) {
	b.vel = v
	b.writes++
}

func (b *fakeBody) Pose() BodyPose {
	return BodyPose{Position: b.pos, Orientation: mgl64.QuatIdent()}
}

func (b *fakeBody) ReplaceCapsule(halfHeight, radius float64) {
	b.capsules = append(b.capsules, [2]float64{halfHeight, radius})
}

func testPlayer() config.PlayerConfig {
	return config.PlayerConfig{
		WalkSpeed:          4,
		CrouchSpeed:        2,
		SprintMultiplier:   2,
		DashSpeed:          10,
		DashDuration:       15,
		JumpStrength:       6,
		CrouchJumpStrength: 3,
		GroundedEpsilon:    0.05,
		StandHeight:        1.8,
		CrouchHeight:       1.0,
		Radius:             0.35,
		EyeHeight:          0.7,
		CrouchEyeHeight:    0.3,
	}
}

func testCamera() config.CameraConfig {
	return config.CameraConfig{
		WalkBob:            config.HeadBobConfig{Frequency: 0.2, AmplitudeX: 0.02, AmplitudeY: 0.05},
		SprintBob:          config.HeadBobConfig{Frequency: 0.3, AmplitudeX: 0.04, AmplitudeY: 0.08},
		CrouchBob:          config.HeadBobConfig{Frequency: 0.1, AmplitudeX: 0.01, AmplitudeY: 0.02},
		BobLerp:            0.2,
		StrafeRoll:         0.04,
		DashTilt:           0.1,
		RollLerp:           0.5,
		ThirdPersonOffset:  mgl64.Vec3{0, 2, 5},
		ThirdPersonLerp:    0.25,
		ThirdPersonLookAtY: 0.5,
		StartMeshVisible:   true,
	}
}

func newTestController() (*Controller, *fakeBody) {
	return New(testPlayer(), testCamera()), &fakeBody{pos: mgl64.Vec3{1, 2, 3}}
}

func hold(ids ...config.ActionID) *Input {
	in := &Input{}
	for _, id := range ids {
		in.Set(id, true)
	}
	return in
}

func TestIntentIsUnitOrZero(t *testing.T) {
	dirs := []config.ActionID{config.ActionForward, config.ActionBack, config.ActionLeft, config.ActionRight}
	for mask := 0; mask < 16; mask++ {
		in := &Input{Yaw: 0.7}
		for i, id := range dirs {
			in.Set(id, mask&(1<<i) != 0)
		}
		l := horizontalIntent(in).Len()
		if l != 0 {
			assert.InDelta(t, 1.0, l, 1e-9, "mask %04b", mask)
		}
	}

	assert.Zero(t, horizontalIntent(hold(config.ActionForward, config.ActionBack)).Len())
	assert.Zero(t, horizontalIntent(hold(config.ActionLeft, config.ActionRight)).Len())
}

func TestIdleKeepsVerticalVelocity(t *testing.T) {
	c, body := newTestController()
	body.vel = mgl64.Vec3{0, -3.2, 0}

	out := c.Tick(&Input{}, body)

	assert.Equal(t, 0.0, out.Velocity.X())
	assert.Equal(t, -3.2, out.Velocity.Y())
	assert.Equal(t, 0.0, out.Velocity.Z())
	assert.Equal(t, 1, body.writes)
	assert.InDelta(t, 1.0, out.Camera.Position.X(), 1e-12)
	assert.InDelta(t, 2.7, out.Camera.Position.Y(), 1e-12)
	assert.InDelta(t, 3.0, out.Camera.Position.Z(), 1e-12)
	assert.Equal(t, mgl64.Vec2{}, c.Rig.ShakeOffset)
}

func TestForwardWalkAndSprint(t *testing.T) {
	c, body := newTestController()

	out := c.Tick(hold(config.ActionForward), body)
	assert.InDelta(t, 0, out.Velocity.X(), 1e-12)
	assert.InDelta(t, -4, out.Velocity.Z(), 1e-12)
	assert.False(t, c.Movement.Sprinting)

	out = c.Tick(hold(config.ActionForward, config.ActionSprint), body)
	assert.InDelta(t, -8, out.Velocity.Z(), 1e-12)
	assert.True(t, c.Movement.Sprinting)
}

func TestYawRotatesIntent(t *testing.T) {
	c, body := newTestController()
	in := hold(config.ActionForward)
	in.Yaw = math.Pi / 2

	out := c.Tick(in, body)
	assert.InDelta(t, -4, out.Velocity.X(), 1e-9)
	assert.InDelta(t, 0, out.Velocity.Z(), 1e-9)
}

func TestSprintIgnoredWhileCrouched(t *testing.T) {
	c, body := newTestController()
	c.Tick(hold(config.ActionCrouchToggle), body)
	require.True(t, c.Movement.Crouched)

	out := c.Tick(hold(config.ActionForward, config.ActionSprint), body)
	assert.InDelta(t, -2, out.Velocity.Z(), 1e-12)
	assert.False(t, c.Movement.Sprinting)
}

func TestCrouchToggleFiresOncePerPress(t *testing.T) {
	c, body := newTestController()

	for i := 0; i < 5; i++ {
		c.Tick(hold(config.ActionCrouchToggle), body)
	}
	assert.True(t, c.Movement.Crouched)
	assert.False(t, c.Movement.CrouchLatch.Armed())
	require.Len(t, body.capsules, 1)
	assert.Equal(t, [2]float64{0.5, 0.35}, body.capsules[0])

	c.Tick(&Input{}, body)
	assert.True(t, c.Movement.CrouchLatch.Armed())

	out := c.Tick(hold(config.ActionCrouchToggle), body)
	assert.True(t, out.CrouchChanged)
	assert.False(t, c.Movement.Crouched)
	require.Len(t, body.capsules, 2)
	assert.Equal(t, [2]float64{0.9, 0.35}, body.capsules[1])
	assert.Equal(t, 6.0, c.Movement.JumpStrength)
}

func TestDashLastsDuration(t *testing.T) {
	c, body := newTestController()
	in := hold(config.ActionForward, config.ActionDash)

	for tick := 1; tick <= 15; tick++ {
		out := c.Tick(in, body)
		assert.InDelta(t, -(4 + 10), out.Velocity.Z(), 1e-9, "tick %d", tick)
		if tick == 1 {
			assert.True(t, out.DashStarted)
		}
	}
	assert.Equal(t, 0, c.Movement.DashTimer)

	out := c.Tick(in, body)
	assert.InDelta(t, -4, out.Velocity.Z(), 1e-9, "dash contribution ends after 15 ticks")
	assert.False(t, out.DashStarted, "held key does not retrigger")
}

func TestDashCannotRetriggerWhileActive(t *testing.T) {
	c, body := newTestController()

	c.Tick(hold(config.ActionForward, config.ActionDash), body)
	c.Tick(hold(config.ActionForward), body)
	out := c.Tick(hold(config.ActionLeft, config.ActionDash), body)

	assert.False(t, out.DashStarted)
	assert.Equal(t, 12, c.Movement.DashTimer)
	assert.InDelta(t, -1.0, c.Movement.DashDirection.Z(), 1e-9, "direction stays latched")
	assert.InDelta(t, -4.0, out.Velocity.X(), 1e-9)
	assert.InDelta(t, -10.0, out.Velocity.Z(), 1e-9)
}

func TestDashNeedsIntent(t *testing.T) {
	c, body := newTestController()

	out := c.Tick(hold(config.ActionDash), body)
	assert.False(t, out.DashStarted)
	assert.Equal(t, 0, c.Movement.DashTimer)

	// The press was consumed; moving while still holding does not dash.
	out = c.Tick(hold(config.ActionDash, config.ActionForward), body)
	assert.False(t, out.DashStarted)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	c, body := newTestController()

	out := c.Tick(hold(config.ActionJump), body)
	assert.True(t, out.Jumped)
	assert.Equal(t, 6.0, out.Velocity.Y())

	// Still rising: held jump adds nothing.
	body.vel = mgl64.Vec3{0, 4, 0}
	out = c.Tick(hold(config.ActionJump), body)
	assert.False(t, out.Jumped)
	assert.Equal(t, 4.0, out.Velocity.Y())

	body.vel = mgl64.Vec3{0, -2, 0}
	out = c.Tick(hold(config.ActionJump), body)
	assert.False(t, out.Jumped)
	assert.Equal(t, -2.0, out.Velocity.Y())
}

func TestCrouchedJumpIsReduced(t *testing.T) {
	c, body := newTestController()
	c.Tick(hold(config.ActionCrouchToggle), body)

	body.vel = mgl64.Vec3{0, 0.01, 0}
	out := c.Tick(hold(config.ActionJump), body)
	assert.Equal(t, 3.0, out.Velocity.Y())
}

type stubGround bool

func (g stubGround) Grounded(Body) bool { return bool(g) }

func TestGroundSensorIsPluggable(t *testing.T) {
	c, body := newTestController()
	c.Ground = stubGround(false)

	out := c.Tick(hold(config.ActionJump), body)
	assert.False(t, out.Jumped)
}

func TestMeshToggleAndSync(t *testing.T) {
	c, body := newTestController()

	out := c.Tick(hold(config.ActionToggleMesh), body)
	assert.False(t, out.MeshVisible)
	assert.True(t, out.MeshChanged)

	out = c.Tick(hold(config.ActionToggleMesh), body)
	assert.False(t, out.MeshVisible)

	c.Tick(&Input{}, body)
	out = c.Tick(hold(config.ActionToggleMesh), body)
	assert.True(t, out.MeshVisible)
}
