package components

import (
	"github.com/automoto/yardwalk/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the rigid-body world. There is one per scene.
type PhysicsData struct {
	World *physics.World
}

var Physics = donburi.NewComponentType[PhysicsData]()

// BodyData links an entity to its rigid body.
type BodyData struct {
	Handle physics.BodyHandle
	Shape  physics.Shape
}

var Body = donburi.NewComponentType[BodyData]()
