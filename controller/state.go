package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraMode selects how the camera pose is derived from the body.
type CameraMode int

const (
	FirstPerson CameraMode = iota
	ThirdPerson
)

func (m CameraMode) String() string {
	if m == ThirdPerson {
		return "third person"
	}
	return "first person"
}

// Toggle returns the other mode.
func (m CameraMode) Toggle() CameraMode {
	if m == FirstPerson {
		return ThirdPerson
	}
	return FirstPerson
}

// MovementState is the locomotion mode and its transient timers.
type MovementState struct {
	Crouched     bool
	CrouchLatch  Latch
	JumpStrength float64 // current jump impulse, reduced while crouched

	DashTimer     int        // ticks remaining, never negative
	DashDirection mgl64.Vec3 // unit vector in the XZ plane
	DashLatch     Latch

	Sprinting bool // derived each tick
}

// Dashing reports whether a dash is in progress.
func (m MovementState) Dashing() bool {
	return m.DashTimer > 0
}

// CameraRigState is the smoothed camera memory carried between ticks.
type CameraRigState struct {
	Mode        CameraMode
	BobPhase    float64
	ShakeOffset mgl64.Vec2 // X sideways, Y vertical
	Roll        float64
	Position    mgl64.Vec3 // last camera position; origin for third-person smoothing
	placed      bool

	ModeLatch   Latch
	MeshLatch   Latch
	MeshVisible bool
}

// CameraPose is the camera transform for one tick.
type CameraPose struct {
	Mode     CameraMode
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Roll     float64
}

// Orientation returns yaw, then pitch, then roll as a quaternion.
func (p CameraPose) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(p.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(p.Pitch, mgl64.Vec3{1, 0, 0})
	roll := mgl64.QuatRotate(p.Roll, mgl64.Vec3{0, 0, 1})
	return yaw.Mul(pitch).Mul(roll)
}

// Forward is the unit view direction.
func (p CameraPose) Forward() mgl64.Vec3 {
	return p.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
}

// Up is the unit camera up vector, including roll.
func (p CameraPose) Up() mgl64.Vec3 {
	return p.Orientation().Rotate(mgl64.Vec3{0, 1, 0})
}

// lookAngles returns the yaw and pitch that face along dir.
func lookAngles(dir mgl64.Vec3) (yaw, pitch float64) {
	yaw = math.Atan2(-dir.X(), -dir.Z())
	pitch = math.Atan2(dir.Y(), math.Hypot(dir.X(), dir.Z()))
	return yaw, pitch
}
