package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Floor is a checkerboard of square tiles on the y=0 plane.
type Floor struct {
	tiles []Instance
}

// NewFloor tiles the square [-halfSize, halfSize] on X and Z.
func NewFloor(halfSize, tile float64, a, b color.RGBA) *Floor {
	n := int(math.Ceil(2 * halfSize / tile))
	quadA := tileMesh(tile/2, a)
	quadB := tileMesh(tile/2, b)

	f := &Floor{tiles: make([]Instance, 0, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			mesh := quadA
			if (i+j)%2 == 1 {
				mesh = quadB
			}
			f.tiles = append(f.tiles, Instance{
				Mesh:        mesh,
				Position:    mgl64.Vec3{-halfSize + (float64(i)+0.5)*tile, 0, -halfSize + (float64(j)+0.5)*tile},
				Orientation: mgl64.QuatIdent(),
			})
		}
	}
	return f
}

func tileMesh(half float64, clr color.RGBA) *Mesh {
	return &Mesh{
		Color: clr,
		Faces: []Face{newFace(mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{-half, 0, half}, mgl64.Vec3{half, 0, half},
			mgl64.Vec3{half, 0, -half}, mgl64.Vec3{-half, 0, -half})},
	}
}

func (f *Floor) Tiles() []Instance {
	return f.tiles
}
