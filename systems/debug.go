package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/fonts"
	"github.com/automoto/yardwalk/physics"
	"github.com/automoto/yardwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	minimapBackground = color.RGBA{0, 0, 0, 160}
	minimapFixed      = color.RGBA{100, 100, 100, 255}
	minimapDynamic    = color.RGBA{0, 255, 255, 255}
)

// DrawDebug draws the broadphase space as a top-down minimap plus frame stats.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	world := getPhysicsWorld(ecs)
	if world == nil {
		return
	}
	space := world.Space()

	size := cfg.Debug.MinimapSize
	originX := float64(screen.Bounds().Dx()) - size - hudMargin
	originY := float64(hudMargin)
	scale := size / float64(space.Width()*space.CellWidth)

	vector.FillRect(screen, float32(originX), float32(originY), float32(size), float32(size), minimapBackground, false)

	for _, obj := range space.Objects() {
		c := minimapDynamic
		if obj.HasTags(physics.TagFixed) {
			c = minimapFixed
		}
		x := float32(originX + obj.X*scale)
		y := float32(originY + obj.Y*scale)
		w := float32(obj.W * scale)
		h := float32(obj.H * scale)

		// Outline only; the floor would hide everything else
		vector.FillRect(screen, x, y, w, 1, c, false)
		vector.FillRect(screen, x, y+h-1, w, 1, c, false)
		vector.FillRect(screen, x, y, 1, h, c, false)
		vector.FillRect(screen, x+w-1, y, 1, h, c, false)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pose := world.Pose(components.Body.Get(playerEntry).Handle)
		px := float32(originX + world.ToSpace(pose.Position.X())*scale)
		py := float32(originY + world.ToSpace(pose.Position.Z())*scale)
		vector.FillCircle(screen, px, py, 3, cfg.Yellow, true)

		f := components.Player.Get(playerEntry).Last.Camera.Forward()
		vector.StrokeLine(screen, px, py, px+float32(f.X())*10, py+float32(f.Z())*10, 1, cfg.Yellow, true)
	}

	stats := fmt.Sprintf("TPS %.0f  FPS %.0f  objects %d", ebiten.ActualTPS(), ebiten.ActualFPS(), len(space.Objects()))
	face := fonts.Mono.Get()
	text.Draw(screen, stats, face, int(originX), int(originY+size)+face.Metrics().Height.Ceil(), cfg.Green)
}
