package components

import (
	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/render"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *assets.Level
	Floor *render.Floor
	Sky   render.Sky
}

var Level = donburi.NewComponentType[LevelData]()
