package components

import (
	"github.com/automoto/yardwalk/controller"
	"github.com/automoto/yardwalk/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *controller.Controller
	Collider   physics.ColliderHandle // current capsule, replaced on crouch toggle
	Spawn      mgl64.Vec3
	Last       controller.Output // result of the latest tick
}

var Player = donburi.NewComponentType[PlayerData]()
