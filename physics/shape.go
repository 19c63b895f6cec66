package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
	ShapeCylinder
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCuboid:
		return "cuboid"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCapsule:
		return "capsule"
	}
	return "unknown"
}

// Shape is a collider shape centred on its body. Cylinders and capsules
// stand along +Y.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3 // cuboid only
	HalfHeight  float64    // cylinder and capsule; excludes the capsule caps
	Radius      float64
}

func Cuboid(hx, hy, hz float64) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: mgl64.Vec3{hx, hy, hz}}
}

func Cylinder(halfHeight, radius float64) Shape {
	return Shape{Kind: ShapeCylinder, HalfHeight: halfHeight, Radius: radius}
}

func Capsule(halfHeight, radius float64) Shape {
	return Shape{Kind: ShapeCapsule, HalfHeight: halfHeight, Radius: radius}
}

// Validate rejects non-positive dimensions.
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeCuboid:
		if s.HalfExtents.X() <= 0 || s.HalfExtents.Y() <= 0 || s.HalfExtents.Z() <= 0 {
			return fmt.Errorf("%w: cuboid half extents %v", ErrInvalidShape, s.HalfExtents)
		}
	case ShapeCylinder, ShapeCapsule:
		if s.Radius <= 0 || s.HalfHeight < 0 || (s.Kind == ShapeCylinder && s.HalfHeight == 0) {
			return fmt.Errorf("%w: %s half height %g radius %g", ErrInvalidShape, s.Kind, s.HalfHeight, s.Radius)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidShape, s.Kind)
	}
	return nil
}

// Extents returns the half size of the shape's axis-aligned bounding box.
func (s Shape) Extents() mgl64.Vec3 {
	switch s.Kind {
	case ShapeCylinder:
		return mgl64.Vec3{s.Radius, s.HalfHeight, s.Radius}
	case ShapeCapsule:
		return mgl64.Vec3{s.Radius, s.HalfHeight + s.Radius, s.Radius}
	}
	return s.HalfExtents
}

func (s Shape) Volume() float64 {
	switch s.Kind {
	case ShapeCylinder:
		return math.Pi * s.Radius * s.Radius * 2 * s.HalfHeight
	case ShapeCapsule:
		r := s.Radius
		return math.Pi*r*r*2*s.HalfHeight + 4.0/3.0*math.Pi*r*r*r
	}
	return 8 * s.HalfExtents.X() * s.HalfExtents.Y() * s.HalfExtents.Z()
}
