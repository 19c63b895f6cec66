package systems

import (
	"github.com/automoto/yardwalk/components"
	"github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies the player's latest camera pose to the view camera.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pose := components.Player.Get(playerEntry).Last.Camera

	camera.Pose = pose
	camera.View.Resize(config.C.Width, config.C.Height)
	camera.View.SetPose(pose.Position, pose.Orientation())
}
