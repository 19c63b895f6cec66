// Package render draws flat-shaded meshes with a software projection on
// top of ebiten's triangle batcher.
package render

import (
	"github.com/automoto/yardwalk/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking down its local -Z.
type Camera struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat

	FOV           float64 // vertical, degrees
	Near, Far     float64
	Width, Height float64
}

func NewCamera(cfg config.CameraConfig, width, height int) *Camera {
	return &Camera{
		Orientation: mgl64.QuatIdent(),
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Width:       float64(width),
		Height:      float64(height),
	}
}

func (c *Camera) SetPose(position mgl64.Vec3, orientation mgl64.Quat) {
	c.Position = position
	c.Orientation = orientation
}

func (c *Camera) Resize(width, height int) {
	c.Width = float64(width)
	c.Height = float64(height)
}

func (c *Camera) Forward() mgl64.Vec3 {
	return c.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
}

// View maps world space into camera space.
func (c *Camera) View() mgl64.Mat4 {
	rot := c.Orientation.Normalize().Mat4().Transpose()
	return rot.Mul4(mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

func (c *Camera) Projection() mgl64.Mat4 {
	aspect := 1.0
	if c.Height > 0 {
		aspect = c.Width / c.Height
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ToView transforms a world point into camera space.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, c.View())
}

// ProjectView maps a camera-space point in front of the near plane to
// screen pixels.
func (c *Camera) ProjectView(v mgl64.Vec3) mgl64.Vec2 {
	clip := c.Projection().Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * c.Width,
		(1 - ndc.Y()) / 2 * c.Height,
	}
}

// Project maps a world point to screen pixels. ok is false when the
// point is behind the near plane.
func (c *Camera) Project(p mgl64.Vec3) (screen mgl64.Vec2, ok bool) {
	v := c.ToView(p)
	if -v.Z() < c.Near {
		return mgl64.Vec2{}, false
	}
	return c.ProjectView(v), true
}

// clipNear cuts a camera-space polygon against the near plane.
func clipNear(poly []mgl64.Vec3, near float64) []mgl64.Vec3 {
	inside := func(v mgl64.Vec3) bool { return -v.Z() >= near }
	var out []mgl64.Vec3
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			t := (-near - prev.Z()) / (cur.Z() - prev.Z())
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}
