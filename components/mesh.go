package components

import (
	"github.com/automoto/yardwalk/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MeshData is the visual transform of an entity, synced from physics each tick.
type MeshData struct {
	Mesh        *render.Mesh
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Visible     bool
}

var Mesh = donburi.NewComponentType[MeshData]()
