package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a convex polygon wound counter-clockwise seen from outside.
type Face struct {
	Vertices []mgl64.Vec3
	Normal   mgl64.Vec3
}

type Mesh struct {
	Faces []Face
	Color color.RGBA
}

func newFace(normal mgl64.Vec3, verts ...mgl64.Vec3) Face {
	return Face{Vertices: verts, Normal: normal}
}

// polygonNormal is Newell's normal of a planar polygon.
func polygonNormal(verts []mgl64.Vec3) mgl64.Vec3 {
	var n mgl64.Vec3
	for i, cur := range verts {
		next := verts[(i+1)%len(verts)]
		n[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		n[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		n[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// Box builds an axis-aligned cuboid around the origin.
func Box(half mgl64.Vec3, clr color.RGBA) *Mesh {
	x, y, z := half.X(), half.Y(), half.Z()
	v := func(sx, sy, sz float64) mgl64.Vec3 { return mgl64.Vec3{sx * x, sy * y, sz * z} }
	return &Mesh{
		Color: clr,
		Faces: []Face{
			newFace(mgl64.Vec3{0, 0, 1}, v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)),
			newFace(mgl64.Vec3{0, 0, -1}, v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)),
			newFace(mgl64.Vec3{1, 0, 0}, v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)),
			newFace(mgl64.Vec3{-1, 0, 0}, v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)),
			newFace(mgl64.Vec3{0, 1, 0}, v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)),
			newFace(mgl64.Vec3{0, -1, 0}, v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)),
		},
	}
}

// ring returns points on a horizontal circle at height y, counter-clockwise
// seen from above.
func ring(radius, y float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = mgl64.Vec3{radius * math.Cos(a), y, -radius * math.Sin(a)}
	}
	return pts
}

// band joins two rings of equal length with quads facing outward.
func band(lower, upper []mgl64.Vec3) []Face {
	n := len(lower)
	faces := make([]Face, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		verts := []mgl64.Vec3{lower[i], lower[j], upper[j], upper[i]}
		faces = append(faces, newFace(polygonNormal(verts), verts...))
	}
	return faces
}

func disc(pts []mgl64.Vec3, up bool) Face {
	n := len(pts)
	verts := make([]mgl64.Vec3, n)
	if up {
		copy(verts, pts)
		return newFace(mgl64.Vec3{0, 1, 0}, verts...)
	}
	for i := range pts {
		verts[i] = pts[n-1-i]
	}
	return newFace(mgl64.Vec3{0, -1, 0}, verts...)
}

// Cylinder builds an upright cylinder around the origin.
func Cylinder(halfHeight, radius float64, segments int, clr color.RGBA) *Mesh {
	lower := ring(radius, -halfHeight, segments)
	upper := ring(radius, halfHeight, segments)
	faces := band(lower, upper)
	faces = append(faces, disc(upper, true), disc(lower, false))
	return &Mesh{Faces: faces, Color: clr}
}

// Capsule builds an upright capsule: a cylinder of the given half height
// with hemispherical caps of the given radius, each cap made of rings bands.
func Capsule(halfHeight, radius float64, segments, rings int, clr color.RGBA) *Mesh {
	var faces []Face
	prev := ring(radius, -halfHeight, segments)
	faces = append(faces, band(prev, ring(radius, halfHeight, segments))...)

	// Bottom cap, from the equator down to a small ring.
	for i := 1; i <= rings; i++ {
		a := math.Pi / 2 * float64(i) / float64(rings+1)
		next := ring(radius*math.Cos(a), -halfHeight-radius*math.Sin(a), segments)
		faces = append(faces, band(next, prev)...)
		prev = next
	}
	faces = append(faces, disc(prev, false))

	prev = ring(radius, halfHeight, segments)
	for i := 1; i <= rings; i++ {
		a := math.Pi / 2 * float64(i) / float64(rings+1)
		next := ring(radius*math.Cos(a), halfHeight+radius*math.Sin(a), segments)
		faces = append(faces, band(prev, next)...)
		prev = next
	}
	faces = append(faces, disc(prev, true))
	return &Mesh{Faces: faces, Color: clr}
}
