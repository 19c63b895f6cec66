package factory

import (
	"testing"

	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) (*ecs.ECS, *physics.World) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreatePhysics(e, cfg.Physics)
	return e, components.Physics.Get(entry).World
}

func TestCreatePhysicsIsRequired(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Panics(t, func() { _, _ = CreateFloor(e, 4) })
}

func TestCreateFloorTopIsGround(t *testing.T) {
	e, world := newTestECS(t)

	floor, err := CreateFloor(e, 8)
	require.NoError(t, err)
	assert.True(t, floor.HasComponent(tags.Floor))

	min, max, ok := world.Bounds(components.Body.Get(floor).Handle)
	require.True(t, ok)
	assert.InDelta(t, 0.0, max.Y(), 1e-9)
	assert.InDelta(t, -8.0, min.X(), 1e-9)
	assert.InDelta(t, 8.0, max.Z(), 1e-9)
}

func TestCreatePerimeter(t *testing.T) {
	e, _ := newTestECS(t)

	require.NoError(t, CreatePerimeter(e, 10))
	count := 0
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		count++
		assert.True(t, components.Mesh.Get(entry).Visible)
	})
	assert.Equal(t, 4, count)
}

func TestPropShape(t *testing.T) {
	crate := cfg.Props.Types[cfg.PropCrate]
	barrel := cfg.Props.Types[cfg.PropBarrel]

	tests := []struct {
		name  string
		spawn assets.PropSpawn
		want  physics.Shape
	}{
		{"default crate", assets.PropSpawn{Kind: cfg.PropCrate}, physics.Cuboid(crate.Size/2, crate.Size/2, crate.Size/2)},
		{"sized crate", assets.PropSpawn{Kind: cfg.PropCrate, Size: 2}, physics.Cuboid(1, 1, 1)},
		{"default barrel", assets.PropSpawn{Kind: cfg.PropBarrel}, physics.Cylinder(barrel.Size/2, barrel.Radius)},
		{"tall barrel", assets.PropSpawn{Kind: cfg.PropBarrel, Size: 1.6, Radius: 0.3}, physics.Cylinder(0.8, 0.3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, mesh, err := PropShape(tt.spawn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shape)
			assert.NotEmpty(t, mesh.Faces)
		})
	}

	_, _, err := PropShape(assets.PropSpawn{Kind: "lamp"})
	assert.Error(t, err)
}

func TestCreatePropDropsAboveSpawn(t *testing.T) {
	e, world := newTestECS(t)

	prop, err := CreateProp(e, assets.PropSpawn{Kind: cfg.PropCrate, X: 3, Z: -2, DropHeight: 4})
	require.NoError(t, err)

	data := components.Prop.Get(prop)
	assert.Equal(t, cfg.PropCrate, data.Kind)
	half := cfg.Props.Types[cfg.PropCrate].Size / 2
	assert.Equal(t, mgl64.Vec3{3, half + 4, -2}, data.Spawn)

	pose := world.Pose(components.Body.Get(prop).Handle)
	assert.Equal(t, data.Spawn, pose.Position)
	assert.Equal(t, data.Spawn, components.Mesh.Get(prop).Position)
	assert.Greater(t, world.Mass(components.Body.Get(prop).Handle), 0.0)

	_, err = CreateProp(e, assets.PropSpawn{Kind: "lamp"})
	assert.Error(t, err)
}

func TestCreatePlayerStandsOnFloor(t *testing.T) {
	e, world := newTestECS(t)
	_, err := CreateFloor(e, 8)
	require.NoError(t, err)

	player, err := CreatePlayer(e, assets.PlayerSpawn{X: 1, Z: 2})
	require.NoError(t, err)

	data := components.Player.Get(player)
	require.NotNil(t, data.Controller)
	assert.False(t, data.Controller.Movement.Crouched)
	assert.Equal(t, cfg.Player.JumpStrength, data.Controller.Movement.JumpStrength)

	body := components.Body.Get(player)
	assert.Equal(t, physics.Capsule(cfg.Player.StandHeight/2, cfg.Player.Radius), body.Shape)
	assert.Equal(t, []physics.ColliderHandle{data.Collider}, world.Colliders(body.Handle))

	min, _, ok := world.Bounds(body.Handle)
	require.True(t, ok)
	assert.InDelta(t, 0.0, min.Y(), 1e-9, "capsule bottom rests on the floor")
}

func TestCreatePlayerContactSensor(t *testing.T) {
	before := cfg.Player
	t.Cleanup(func() { cfg.Player = before })
	cfg.Player.GroundSensor = cfg.GroundSensorContact

	e, _ := newTestECS(t)
	player, err := CreatePlayer(e, assets.PlayerSpawn{})
	require.NoError(t, err)
	assert.IsType(t, contactSensor{}, components.Player.Get(player).Controller.Ground)
}

func TestCreateLevelFrom(t *testing.T) {
	e, _ := newTestECS(t)
	level := &assets.Level{
		Name:     "test",
		HalfSize: 4,
		Props: []assets.PropSpawn{
			{Kind: cfg.PropCrate, X: 1},
			{Kind: cfg.PropBarrel, X: -1},
		},
	}

	entry := CreateLevelFrom(e, level)
	data := components.Level.Get(entry)
	assert.Same(t, level, data.Level)
	assert.Len(t, data.Floor.Tiles(), 16)

	require.NoError(t, CreateScenery(e, level))
	props := 0
	tags.Prop.Each(e.World, func(*donburi.Entry) { props++ })
	assert.Equal(t, 2, props)

	level.Props = append(level.Props, assets.PropSpawn{Kind: "lamp"})
	assert.Error(t, CreateScenery(e, level))
}

func TestCreateToastFades(t *testing.T) {
	e, _ := newTestECS(t)

	toast := components.Toast.Get(CreateToast(e, "hello"))
	assert.Equal(t, "hello", toast.Message)

	total := float32(toastFadeIn) + cfg.Toast.Hold + cfg.Toast.Duration
	var alpha float32
	var done bool
	for elapsed := float32(0); elapsed < total+0.1 && !done; elapsed += 0.05 {
		alpha, _, done = toast.Fade.Update(0.05)
	}
	assert.True(t, done)
	assert.InDelta(t, 0, alpha, 1e-3)
}

func TestCreateCamera(t *testing.T) {
	e, _ := newTestECS(t)
	cam := components.Camera.Get(CreateCamera(e, mgl64.Vec3{1, 0, 2}))
	require.NotNil(t, cam.View)
	assert.InDelta(t, cfg.Player.EyeHeight, cam.View.Position.Y(), 1e-9)
	assert.Equal(t, float64(cfg.C.Width), cam.View.Width)
}
