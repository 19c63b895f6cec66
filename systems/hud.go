package systems

import (
	"fmt"
	"math"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/automoto/yardwalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	crosshairSize = 6
)

// DrawHUD renders the crosshair and the player's movement state.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	out := player.Last

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if out.Camera.Mode == controller.FirstPerson {
		cx, cy := float32(width)/2, float32(height)/2
		vector.FillRect(screen, cx-crosshairSize, cy-0.5, 2*crosshairSize, 1, cfg.White, false)
		vector.FillRect(screen, cx-0.5, cy-crosshairSize, 1, 2*crosshairSize, cfg.White, false)
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	y := height - hudMargin - lineHeight
	text.Draw(screen, hudStatus(player.Controller, out), face, hudMargin, y, cfg.White)
	text.Draw(screen, hudHint(getOrCreateInput(ecs).LastInputMethod), face, hudMargin, y+lineHeight, cfg.LightBlue)
}

// hudStatus summarises the camera mode, ground speed and movement state.
func hudStatus(c *controller.Controller, out controller.Output) string {
	speed := math.Hypot(out.Velocity.X(), out.Velocity.Z())
	state := "walking"
	switch {
	case c.Movement.Dashing():
		state = "dashing"
	case c.Movement.Crouched:
		state = "crouched"
	case c.Movement.Sprinting:
		state = "sprinting"
	case speed == 0:
		state = "idle"
	}
	mesh := "off"
	if out.MeshVisible {
		mesh = "on"
	}
	return fmt.Sprintf("%s person  %.1f m/s  %s  mesh %s", cameraModeName(out.Camera.Mode), speed, state, mesh)
}

// cameraModeName is the HUD label for a camera mode.
func cameraModeName(m controller.CameraMode) string {
	if m == controller.ThirdPerson {
		return "3rd"
	}
	return "1st"
}

// hudHint returns the control reminder for the last used input device.
func hudHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Cross: jump   Circle: dash   Square: crouch   Triangle: camera   Options: pause"
	case components.InputXbox:
		return "A: jump   B: dash   X: crouch   Y: camera   Start: pause"
	}
	return "WASD: move   Space: jump   Shift: sprint   Q: dash   C: crouch   V: camera   M: mesh   Esc: pause"
}
