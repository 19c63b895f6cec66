// Package gamemath holds the small scalar and vector helpers shared by the
// controller and the physics world.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ApplyFrictionXZ reduces the horizontal part of v toward zero by friction,
// keeping its direction. Y is left alone.
func ApplyFrictionXZ(v mgl64.Vec3, friction float64) mgl64.Vec3 {
	h := mgl64.Vec2{v.X(), v.Z()}
	speed := h.Len()
	if speed <= friction {
		return mgl64.Vec3{0, v.Y(), 0}
	}
	h = h.Mul((speed - friction) / speed)
	return mgl64.Vec3{h.X(), v.Y(), h.Y()}
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from a toward b by factor t (0..1).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 moves from a toward b by factor t (0..1).
func LerpVec2(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// LerpVec3 moves from a toward b by factor t (0..1).
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// RotateY rotates v about the +Y axis by angle radians.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}
