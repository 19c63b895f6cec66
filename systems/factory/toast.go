package factory

import (
	"github.com/automoto/yardwalk/archetypes"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const toastFadeIn = 0.15 // seconds

// CreateToast spawns a notice that fades in, holds, then fades out.
func CreateToast(ecs *ecs.ECS, msg string) *donburi.Entry {
	toast := archetypes.Toast.Spawn(ecs)

	// Alpha is driven by a *gween.Sequence of tweens.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, toastFadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Toast.Hold, ease.Linear),
		gween.New(1, 0, cfg.Toast.Duration, ease.InQuad),
	)
	components.Toast.SetValue(toast, components.ToastData{
		Message: msg,
		Fade:    tw,
	})
	return toast
}
