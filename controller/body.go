package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyPose is the position and orientation of a rigid body.
type BodyPose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Body is the slice of a physics rigid body the controller drives.
// The physics world owns the body; the controller only holds this handle.
type Body interface {
	LinearVelocity() mgl64.Vec3
	SetLinearVelocity(v mgl64.Vec3, wake bool)
	Pose() BodyPose
	// ReplaceCapsule removes the body's collider and attaches a capsule
	// with the given half-height and radius in its place.
	ReplaceCapsule(halfHeight, radius float64)
}

// GroundSensor decides whether a body may jump.
type GroundSensor interface {
	Grounded(body Body) bool
}

// VelocityGroundSensor treats a body as grounded while its vertical speed is
// below Epsilon. It misfires at the apex of a jump and on slopes.
type VelocityGroundSensor struct {
	Epsilon float64
}

func (s VelocityGroundSensor) Grounded(body Body) bool {
	return math.Abs(body.LinearVelocity().Y()) < s.Epsilon
}
