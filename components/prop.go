package components

import (
	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PropData struct {
	Kind  config.PropKind
	Spawn mgl64.Vec3
}

var Prop = donburi.NewComponentType[PropData]()
