package systems

import (
	"github.com/automoto/yardwalk/components"
	"github.com/automoto/yardwalk/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames to avoid allocations
var instances []render.Instance

// DrawScene renders the sky, the floor and every visible mesh from the view camera.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).View

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	level.Sky.Draw(screen, cam)

	instances = instances[:0]
	if level.Floor != nil {
		instances = append(instances, level.Floor.Tiles()...)
	}
	instances = collectInstances(ecs, instances)

	render.DrawMeshes(screen, cam, level.Sky.Sun, instances)
}

// collectInstances appends every visible mesh in the world to dst.
func collectInstances(ecs *ecs.ECS, dst []render.Instance) []render.Instance {
	components.Mesh.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Mesh.Get(e)
		if !m.Visible || m.Mesh == nil {
			return
		}
		dst = append(dst, render.Instance{
			Mesh:        m.Mesh,
			Position:    m.Position,
			Orientation: m.Orientation,
		})
	})
	return dst
}
