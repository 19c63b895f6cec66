package factory

import (
	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera adds the view camera, looking from spawn until the first tick.
func CreateCamera(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	view := render.NewCamera(cfg.Camera, cfg.C.Width, cfg.C.Height)
	view.SetPose(spawn.Add(mgl64.Vec3{0, cfg.Player.EyeHeight, 0}), mgl64.QuatIdent())
	components.Camera.Set(camera, &components.CameraData{View: view})
	return camera
}
