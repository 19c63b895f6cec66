package render

import (
	"image"
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for untextured triangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Light is a single directional light plus an ambient floor.
type Light struct {
	Direction mgl64.Vec3 // direction the light travels
	Color     color.RGBA
	Ambient   float64
}

// Instance places a mesh in the world.
type Instance struct {
	Mesh        *Mesh
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Color       color.RGBA // zero uses the mesh colour
}

// Polygon is a projected, shaded face ready to draw.
type Polygon struct {
	Points []mgl64.Vec2
	Depth  float64
	Color  color.RGBA
}

// Shade scales base by the light falling on a face with the given normal.
func (l Light) Shade(base color.RGBA, normal mgl64.Vec3) color.RGBA {
	diffuse := math.Max(0, normal.Dot(l.Direction.Normalize().Mul(-1)))
	k := l.Ambient + (1-l.Ambient)*diffuse
	mix := func(c, lc uint8) uint8 {
		v := float64(c) * k * float64(lc) / 255
		return uint8(math.Min(255, math.Round(v)))
	}
	return color.RGBA{mix(base.R, l.Color.R), mix(base.G, l.Color.G), mix(base.B, l.Color.B), base.A}
}

// ProjectInstances culls back faces, clips against the near plane and
// returns the visible polygons sorted far to near.
func ProjectInstances(cam *Camera, light Light, instances []Instance) []Polygon {
	var polys []Polygon
	for _, inst := range instances {
		if inst.Mesh == nil {
			continue
		}
		rot := inst.Orientation
		if rot == (mgl64.Quat{}) {
			rot = mgl64.QuatIdent()
		}
		base := inst.Color
		if base == (color.RGBA{}) {
			base = inst.Mesh.Color
		}
		for _, f := range inst.Mesh.Faces {
			if p, ok := projectFace(cam, light, f, inst.Position, rot, base); ok {
				polys = append(polys, p)
			}
		}
	}
	sort.SliceStable(polys, func(i, j int) bool { return polys[i].Depth > polys[j].Depth })
	return polys
}

func projectFace(cam *Camera, light Light, f Face, pos mgl64.Vec3, rot mgl64.Quat, base color.RGBA) (Polygon, bool) {
	normal := rot.Rotate(f.Normal)
	world := make([]mgl64.Vec3, len(f.Vertices))
	var centre mgl64.Vec3
	for i, v := range f.Vertices {
		world[i] = pos.Add(rot.Rotate(v))
		centre = centre.Add(world[i])
	}
	centre = centre.Mul(1 / float64(len(world)))
	if normal.Dot(centre.Sub(cam.Position)) >= 0 {
		return Polygon{}, false
	}

	view := make([]mgl64.Vec3, len(world))
	for i, w := range world {
		view[i] = cam.ToView(w)
	}
	view = clipNear(view, cam.Near)
	if len(view) < 3 {
		return Polygon{}, false
	}

	poly := Polygon{Points: make([]mgl64.Vec2, len(view)), Color: light.Shade(base, normal)}
	for i, v := range view {
		poly.Points[i] = cam.ProjectView(v)
	}
	poly.Depth = centre.Sub(cam.Position).Len()
	if poly.Depth > cam.Far {
		return Polygon{}, false
	}
	return poly, true
}

// DrawMeshes projects and paints instances with the painter's algorithm.
func DrawMeshes(screen *ebiten.Image, cam *Camera, light Light, instances []Instance) {
	DrawPolygons(screen, ProjectInstances(cam, light, instances))
}

// DrawPolygons fills each polygon in order as a triangle fan.
func DrawPolygons(screen *ebiten.Image, polys []Polygon) {
	var vertices []ebiten.Vertex
	var indices []uint16
	flush := func() {
		if len(indices) == 0 {
			return
		}
		screen.DrawTriangles(vertices, indices, white(), &ebiten.DrawTrianglesOptions{})
		vertices, indices = vertices[:0], indices[:0]
	}

	for _, p := range polys {
		if len(vertices)+len(p.Points) > math.MaxUint16 {
			flush()
		}
		first := uint16(len(vertices))
		r, g, b, a := float32(p.Color.R)/255, float32(p.Color.G)/255, float32(p.Color.B)/255, float32(p.Color.A)/255
		for _, pt := range p.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(pt.X()), DstY: float32(pt.Y()),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		for i := 2; i < len(p.Points); i++ {
			indices = append(indices, first, first+uint16(i-1), first+uint16(i))
		}
	}
	flush()
}
