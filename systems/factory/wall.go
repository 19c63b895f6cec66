package factory

import (
	"fmt"

	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloor adds the fixed ground slab whose top face is y=0.
func CreateFloor(ecs *ecs.ECS, halfSize float64) (*donburi.Entry, error) {
	floor := archetypes.Floor.Spawn(ecs)
	half := cfg.Scene.FloorThickness / 2
	shape := physics.Cuboid(halfSize, half, halfSize)
	handle, err := createFixed(ecs, mgl64.Vec3{0, -half, 0}, shape)
	if err != nil {
		return nil, fmt.Errorf("create floor: %w", err)
	}
	components.Body.SetValue(floor, components.BodyData{Handle: handle, Shape: shape})
	return floor, nil
}

// CreateWall adds a fixed, visible box centred at pos.
func CreateWall(ecs *ecs.ECS, pos, half mgl64.Vec3) (*donburi.Entry, error) {
	wall := archetypes.Wall.Spawn(ecs)
	shape := physics.Cuboid(half.X(), half.Y(), half.Z())
	handle, err := createFixed(ecs, pos, shape)
	if err != nil {
		return nil, fmt.Errorf("create wall at %v: %w", pos, err)
	}
	components.Body.SetValue(wall, components.BodyData{Handle: handle, Shape: shape})
	components.Mesh.SetValue(wall, components.MeshData{
		Mesh:        render.Box(half, cfg.Scene.WallColor),
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		Visible:     true,
	})
	return wall, nil
}

// CreatePerimeter fences the square yard of the given half size.
func CreatePerimeter(ecs *ecs.ECS, halfSize float64) error {
	h := cfg.Scene.WallHeight / 2
	t := cfg.Scene.WallThickness / 2
	if h <= 0 || t <= 0 {
		return nil
	}
	edge := halfSize + t
	long := halfSize + 2*t

	walls := []struct{ pos, half mgl64.Vec3 }{
		{mgl64.Vec3{0, h, -edge}, mgl64.Vec3{long, h, t}},
		{mgl64.Vec3{0, h, edge}, mgl64.Vec3{long, h, t}},
		{mgl64.Vec3{-edge, h, 0}, mgl64.Vec3{t, h, halfSize}},
		{mgl64.Vec3{edge, h, 0}, mgl64.Vec3{t, h, halfSize}},
	}
	for _, w := range walls {
		if _, err := CreateWall(ecs, w.pos, w.half); err != nil {
			return err
		}
	}
	return nil
}

func createFixed(ecs *ecs.ECS, pos mgl64.Vec3, shape physics.Shape) (physics.BodyHandle, error) {
	world := physicsWorld(ecs)
	handle := world.CreateRigidBody(physics.Fixed, pos, true)
	if _, err := world.CreateCollider(shape, 0, handle); err != nil {
		return 0, err
	}
	return handle, nil
}
