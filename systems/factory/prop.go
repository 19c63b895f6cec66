package factory

import (
	"fmt"

	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PropShape returns the collider and mesh for a prop spawn, filling unset
// sizes from the prop type.
func PropShape(spawn assets.PropSpawn) (physics.Shape, *render.Mesh, error) {
	t, ok := cfg.Props.Types[spawn.Kind]
	if !ok {
		return physics.Shape{}, nil, fmt.Errorf("unknown prop kind %q", spawn.Kind)
	}
	size := spawn.Size
	if size <= 0 {
		size = t.Size
	}

	switch spawn.Kind {
	case cfg.PropBarrel:
		radius := spawn.Radius
		if radius <= 0 {
			radius = t.Radius
		}
		return physics.Cylinder(size/2, radius), render.Cylinder(size/2, radius, 12, t.Color), nil
	default:
		h := size / 2
		return physics.Cuboid(h, h, h), render.Box(mgl64.Vec3{h, h, h}, t.Color), nil
	}
}

// CreateProp drops a dynamic crate or barrel at the spawn position.
func CreateProp(ecs *ecs.ECS, spawn assets.PropSpawn) (*donburi.Entry, error) {
	shape, mesh, err := PropShape(spawn)
	if err != nil {
		return nil, err
	}

	drop := spawn.DropHeight
	if drop <= 0 {
		drop = cfg.Props.DropHeight
	}
	pos := mgl64.Vec3{spawn.X, shape.Extents().Y() + drop, spawn.Z}

	world := physicsWorld(ecs)
	handle := world.CreateRigidBody(physics.Dynamic, pos, false)
	if _, err := world.CreateCollider(shape, cfg.Props.Types[spawn.Kind].Density, handle); err != nil {
		return nil, fmt.Errorf("create %s collider: %w", spawn.Kind, err)
	}

	prop := archetypes.Prop.Spawn(ecs)
	components.Prop.SetValue(prop, components.PropData{Kind: spawn.Kind, Spawn: pos})
	components.Body.SetValue(prop, components.BodyData{Handle: handle, Shape: shape})
	components.Mesh.SetValue(prop, components.MeshData{
		Mesh:        mesh,
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		Visible:     true,
	})
	return prop, nil
}
