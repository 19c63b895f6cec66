package physics

import (
	"testing"

	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.PhysicsConfig {
	return config.PhysicsConfig{
		Gravity:        9.81,
		Timestep:       1.0 / 60.0,
		MaxFallSpeed:   30,
		GroundFriction: 8,
		SleepSpeed:     0.01,
		StepHeight:     0.05,
		ArenaHalfSize:  64,
		CellSize:       16,
		GridScale:      16,
	}
}

// newFloorWorld returns a world with a fixed floor whose top is at y=0.
func newFloorWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(testConfig())
	addFixed(t, w, mgl64.Vec3{0, -0.25, 0}, Cuboid(32, 0.25, 32))
	return w
}

func addFixed(t *testing.T, w *World, pos mgl64.Vec3, shape Shape) BodyHandle {
	t.Helper()
	bh := w.CreateRigidBody(Fixed, pos, true)
	_, err := w.CreateCollider(shape, 0, bh)
	require.NoError(t, err)
	return bh
}

func addDynamic(t *testing.T, w *World, pos mgl64.Vec3, shape Shape) (BodyHandle, ColliderHandle) {
	t.Helper()
	bh := w.CreateRigidBody(Dynamic, pos, false)
	ch, err := w.CreateCollider(shape, 1, bh)
	require.NoError(t, err)
	return bh, ch
}

func steps(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

func TestPropLandsAndSleeps(t *testing.T) {
	w := newFloorWorld(t)
	crate, _ := addDynamic(t, w, mgl64.Vec3{0, 3, 0}, Cuboid(0.5, 0.5, 0.5))

	w.Step()
	assert.Less(t, w.Pose(crate).Position.Y(), 3.0)
	assert.Less(t, w.LinearVelocity(crate).Y(), 0.0)

	steps(w, 300)
	assert.InDelta(t, 0.5, w.Pose(crate).Position.Y(), 1e-9)
	assert.True(t, w.Grounded(crate))
	assert.True(t, w.Sleeping(crate))
	assert.Equal(t, mgl64.Vec3{}, w.LinearVelocity(crate))
	assert.Equal(t, mgl64.QuatIdent(), w.Pose(crate).Orientation)
}

func TestPropsStack(t *testing.T) {
	w := newFloorWorld(t)
	addDynamic(t, w, mgl64.Vec3{0, 0.5, 0}, Cuboid(0.5, 0.5, 0.5))
	top, _ := addDynamic(t, w, mgl64.Vec3{0.2, 4, 0}, Cylinder(0.5, 0.4))

	steps(w, 300)
	assert.InDelta(t, 1.5, w.Pose(top).Position.Y(), 1e-9)
}

func TestFallSpeedIsCapped(t *testing.T) {
	w := NewWorld(testConfig())
	b, _ := addDynamic(t, w, mgl64.Vec3{0, 500, 0}, Cuboid(0.5, 0.5, 0.5))

	steps(w, 600)
	assert.Equal(t, -30.0, w.LinearVelocity(b).Y())
}

func TestWallBlocksSidewaysMove(t *testing.T) {
	w := newFloorWorld(t)
	addFixed(t, w, mgl64.Vec3{3, 1, 0}, Cuboid(0.5, 2, 2))
	player, _ := addDynamic(t, w, mgl64.Vec3{0, 0.85, 0}, Capsule(0.5, 0.35))

	for i := 0; i < 120; i++ {
		w.SetLinearVelocity(player, mgl64.Vec3{5, 0, 0}, true)
		w.Step()
	}
	assert.InDelta(t, 2.15, w.Pose(player).Position.X(), 1e-9)
	assert.Zero(t, w.LinearVelocity(player).X())
	assert.InDelta(t, 0.85, w.Pose(player).Position.Y(), 1e-9)
}

func TestPlayerPushesPropsByMass(t *testing.T) {
	pushed := func(density float64) float64 {
		w := newFloorWorld(t)
		crate := w.CreateRigidBody(Dynamic, mgl64.Vec3{2, 0.5, 0}, false)
		_, err := w.CreateCollider(Cuboid(0.5, 0.5, 0.5), density, crate)
		require.NoError(t, err)
		player, _ := addDynamic(t, w, mgl64.Vec3{0, 0.85, 0}, Capsule(0.5, 0.35))

		for i := 0; i < 60; i++ {
			w.SetLinearVelocity(player, mgl64.Vec3{5, 0, 0}, true)
			w.Step()
		}
		_, pmax, _ := w.Bounds(player)
		cmin, _, _ := w.Bounds(crate)
		assert.LessOrEqual(t, pmax.X(), cmin.X()+1e-9, "player never enters the crate")
		return w.Pose(crate).Position.X() - 2
	}

	light := pushed(0.5)
	heavy := pushed(8)
	assert.Greater(t, heavy, 0.0)
	assert.Greater(t, light, heavy)
}

func TestFixedWallStopsPush(t *testing.T) {
	w := newFloorWorld(t)
	addFixed(t, w, mgl64.Vec3{3, 1, 0}, Cuboid(0.5, 2, 2))
	crate, _ := addDynamic(t, w, mgl64.Vec3{2, 0.5, 0}, Cuboid(0.5, 0.5, 0.5))
	player, _ := addDynamic(t, w, mgl64.Vec3{0, 0.85, 0}, Capsule(0.5, 0.35))

	for i := 0; i < 120; i++ {
		w.SetLinearVelocity(player, mgl64.Vec3{5, 0, 0}, true)
		w.Step()
	}
	assert.InDelta(t, 2.0, w.Pose(crate).Position.X(), 1e-9)
	assert.InDelta(t, 1.15, w.Pose(player).Position.X(), 1e-9)
}

func TestLowLedgeIsSteppedOver(t *testing.T) {
	w := newFloorWorld(t)
	addFixed(t, w, mgl64.Vec3{2, 0.02, 0}, Cuboid(1, 0.02, 1))
	player, _ := addDynamic(t, w, mgl64.Vec3{0, 0.85, 0}, Capsule(0.5, 0.35))

	for i := 0; i < 30; i++ {
		w.SetLinearVelocity(player, mgl64.Vec3{5, 0, 0}, true)
		w.Step()
	}
	pos := w.Pose(player).Position
	assert.InDelta(t, 2.5, pos.X(), 1e-9)
	assert.InDelta(t, 0.89, pos.Y(), 1e-9)
}

func TestCeilingStopsJump(t *testing.T) {
	w := newFloorWorld(t)
	addFixed(t, w, mgl64.Vec3{0, 2.5, 0}, Cuboid(2, 0.5, 2))
	player, _ := addDynamic(t, w, mgl64.Vec3{0, 0.85, 0}, Capsule(0.5, 0.35))

	w.SetLinearVelocity(player, mgl64.Vec3{0, 10, 0}, true)
	steps(w, 10)

	_, max, ok := w.Bounds(player)
	require.True(t, ok)
	assert.LessOrEqual(t, max.Y(), 2.0+1e-9)
}

func TestFrictionStopsSlidingProp(t *testing.T) {
	w := newFloorWorld(t)
	crate, _ := addDynamic(t, w, mgl64.Vec3{0, 0.5, 0}, Cuboid(0.5, 0.5, 0.5))
	w.SetLinearVelocity(crate, mgl64.Vec3{2, 0, 0}, true)

	w.Step()
	v := w.LinearVelocity(crate).X()
	assert.Less(t, v, 2.0)
	assert.Greater(t, v, 0.0)

	steps(w, 60)
	assert.Equal(t, mgl64.Vec3{}, w.LinearVelocity(crate))
	assert.True(t, w.Sleeping(crate))
	assert.Greater(t, w.Pose(crate).Position.X(), 0.0)

	w.SetLinearVelocity(crate, mgl64.Vec3{0, 1, 0}, true)
	assert.False(t, w.Sleeping(crate), "wake resumes simulation")
}

func TestReplaceColliderChangesExtent(t *testing.T) {
	w := newFloorWorld(t)
	player, standing := addDynamic(t, w, mgl64.Vec3{0, 1.25, 0}, Capsule(0.9, 0.35))

	min, max, _ := w.Bounds(player)
	assert.InDelta(t, 0, min.Y(), 1e-9)
	assert.InDelta(t, 2.5, max.Y(), 1e-9)

	require.NoError(t, w.RemoveCollider(standing, true))
	crouched, err := w.CreateCollider(Capsule(0.5, 0.35), 1, player)
	require.NoError(t, err)
	assert.Equal(t, []ColliderHandle{crouched}, w.Colliders(player))

	steps(w, 120)
	min, max, _ = w.Bounds(player)
	assert.InDelta(t, 0, min.Y(), 1e-9, "crouched body settles on the floor")
	assert.InDelta(t, 1.7, max.Y(), 1e-9)

	require.NoError(t, w.RemoveCollider(crouched, true))
	_, err = w.CreateCollider(Capsule(0.9, 0.35), 1, player)
	require.NoError(t, err)

	min, _, _ = w.Bounds(player)
	assert.InDelta(t, 0, min.Y(), 1e-9, "standing up lifts the body out of the floor")
}

func TestHandleErrors(t *testing.T) {
	w := NewWorld(testConfig())

	_, err := w.CreateCollider(Cuboid(1, 1, 1), 1, BodyHandle(42))
	assert.ErrorIs(t, err, ErrUnknownBody)

	bh := w.CreateRigidBody(Dynamic, mgl64.Vec3{}, false)
	tests := []struct {
		name    string
		shape   Shape
		density float64
	}{
		{"flat cuboid", Cuboid(1, 0, 1), 1},
		{"zero radius", Capsule(0.5, 0), 1},
		{"zero height cylinder", Cylinder(0, 1), 1},
		{"negative density", Cuboid(1, 1, 1), -1},
		{"unknown kind", Shape{Kind: ShapeKind(9)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.CreateCollider(tt.shape, tt.density, bh)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}

	ch, err := w.CreateCollider(Capsule(0, 0.5), 1, bh)
	require.NoError(t, err, "a zero height capsule is a sphere")
	require.NoError(t, w.RemoveCollider(ch, false))
	assert.ErrorIs(t, w.RemoveCollider(ch, false), ErrUnknownCollider)
}

func TestUnknownHandlesReadZero(t *testing.T) {
	w := NewWorld(testConfig())
	assert.Equal(t, mgl64.Vec3{}, w.LinearVelocity(7))
	assert.Equal(t, mgl64.Vec3{}, w.Pose(7).Position)
	assert.Nil(t, w.Colliders(7))
	_, _, ok := w.Bounds(7)
	assert.False(t, ok)
	w.SetLinearVelocity(7, mgl64.Vec3{1, 1, 1}, true)
}

func TestMassAndSpace(t *testing.T) {
	w := NewWorld(testConfig())
	bh := w.CreateRigidBody(Dynamic, mgl64.Vec3{1, 0, -2}, false)
	_, err := w.CreateCollider(Cuboid(0.5, 0.5, 0.5), 2, bh)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w.Mass(bh), 1e-12)

	objs := w.Space().Objects()
	require.Len(t, objs, 1)
	assert.True(t, objs[0].HasTags(TagDynamic))
	assert.InDelta(t, 0.5, w.FromSpace(objs[0].X+footprintPad), 1e-9)
	assert.InDelta(t, -2.5, w.FromSpace(objs[0].Y+footprintPad), 1e-9)
	assert.InDelta(t, 16.0+2*footprintPad, objs[0].W, 1e-9)
}
