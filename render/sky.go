package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sky is a vertical gradient with a sun disc.
type Sky struct {
	Top, Horizon color.RGBA
	Sun          Light
	SunRadius    float32
}

// HorizonY returns the screen row of the horizon for the camera.
func HorizonY(cam *Camera) float64 {
	f := cam.Forward()
	flat := mgl64.Vec3{f.X(), 0, f.Z()}
	if flat.Len() < 1e-6 {
		if f.Y() > 0 {
			return cam.Height * 2
		}
		return -cam.Height
	}
	p := cam.Position.Add(flat.Normalize().Mul(cam.Far / 2))
	if s, ok := cam.Project(p); ok {
		return s.Y()
	}
	return cam.Height / 2
}

func (s Sky) Draw(screen *ebiten.Image, cam *Camera) {
	w := float32(cam.Width)
	h := float32(HorizonY(cam))
	top := h - float32(cam.Height)
	bottom := float32(cam.Height)
	if bottom < h {
		bottom = h
	}

	vertex := func(x, y float32, c color.RGBA) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: x, DstY: y, SrcX: 1, SrcY: 1,
			ColorR: float32(c.R) / 255, ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255, ColorA: 1,
		}
	}
	vertices := []ebiten.Vertex{
		vertex(0, top, s.Top), vertex(w, top, s.Top),
		vertex(w, h, s.Horizon), vertex(0, h, s.Horizon),
		vertex(w, bottom, s.Horizon), vertex(0, bottom, s.Horizon),
	}
	if top > 0 {
		vertices[0].DstY, vertices[1].DstY = 0, 0
	}
	indices := []uint16{0, 1, 2, 0, 2, 3, 3, 2, 4, 3, 4, 5}
	screen.DrawTriangles(vertices, indices, white(), &ebiten.DrawTrianglesOptions{})

	toSun := s.Sun.Direction.Normalize().Mul(-1)
	if pos, ok := cam.Project(cam.Position.Add(toSun.Mul(cam.Far / 2))); ok {
		// premultiplied, a quarter opaque
		c := s.Sun.Color
		glow := color.RGBA{c.R / 4, c.G / 4, c.B / 4, c.A / 4}
		vector.FillCircle(screen, float32(pos.X()), float32(pos.Y()), s.SunRadius*1.8, glow, true)
		vector.FillCircle(screen, float32(pos.X()), float32(pos.Y()), s.SunRadius, s.Sun.Color, true)
	}
}
