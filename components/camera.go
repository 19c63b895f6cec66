package components

import (
	"github.com/automoto/yardwalk/controller"
	"github.com/automoto/yardwalk/render"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View *render.Camera
	Pose controller.CameraPose
}

var Camera = donburi.NewComponentType[CameraData]()
