package systems

import (
	"image/color"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/fonts"
	"github.com/automoto/yardwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SubscribeToasts turns player and settings events into on-screen toasts.
func SubscribeToasts(e *ecs.ECS) {
	CameraModeChangedEvent.Subscribe(e.World, func(w donburi.World, ev CameraModeChanged) {
		ShowToast(e, "Camera: "+ev.Mode.String())
	})
	MeshToggledEvent.Subscribe(e.World, func(w donburi.World, ev MeshToggled) {
		if ev.Visible {
			ShowToast(e, "Player mesh shown")
		} else {
			ShowToast(e, "Player mesh hidden")
		}
	})
	CrouchToggledEvent.Subscribe(e.World, func(w donburi.World, ev CrouchToggled) {
		if ev.Crouched {
			ShowToast(e, "Crouching")
		} else {
			ShowToast(e, "Standing")
		}
	})
	SettingChangedEvent.Subscribe(e.World, func(w donburi.World, ev SettingChanged) {
		ShowToast(e, ev.Message)
	})
}

// ShowToast replaces any visible toast with msg.
func ShowToast(e *ecs.ECS, msg string) *donburi.Entry {
	var old []donburi.Entity
	components.Toast.Each(e.World, func(entry *donburi.Entry) {
		old = append(old, entry.Entity())
	})
	for _, ent := range old {
		e.World.Remove(ent)
	}
	return factory.CreateToast(e, msg)
}

// UpdateToasts advances each toast's fade and removes finished ones.
func UpdateToasts(e *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	var done []donburi.Entity

	components.Toast.Each(e.World, func(entry *donburi.Entry) {
		toast := components.Toast.Get(entry)
		if toast.Fade == nil {
			done = append(done, entry.Entity())
			return
		}
		alpha, _, finished := toast.Fade.Update(dt)
		toast.Alpha = alpha
		if finished {
			toast.Done = true
			done = append(done, entry.Entity())
		}
	})

	for _, ent := range done {
		e.World.Remove(ent)
	}
}

// DrawToasts renders the active toast centred near the top of the screen.
func DrawToasts(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Toast.First(e.World)
	if !ok {
		return
	}
	toast := components.Toast.Get(entry)
	if toast.Alpha <= 0 {
		return
	}

	face := fonts.Regular.Get()
	width := font.MeasureString(face, toast.Message).Ceil()
	height := face.Metrics().Height.Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	y := int(cfg.Toast.TopMargin)

	pad := 8
	vector.FillRect(screen,
		float32(x-pad), float32(y-pad),
		float32(width+2*pad), float32(height+2*pad),
		fade(cfg.Toast.BoxColor, toast.Alpha), false)
	text.Draw(screen, toast.Message, face, x, y+face.Metrics().Ascent.Ceil(), fade(cfg.Toast.Color, toast.Alpha))
}

// fade scales a colour's alpha (premultiplied) by a.
func fade(c color.RGBA, a float32) color.RGBA {
	if a > 1 {
		a = 1
	}
	k := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{k(c.R), k(c.G), k(c.B), k(c.A)}
}
