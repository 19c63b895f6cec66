package systems

import (
	"github.com/automoto/yardwalk/controller"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Player state changes announced to the HUD and toasts.
type CameraModeChanged struct {
	Mode controller.CameraMode
}

type MeshToggled struct {
	Visible bool
}

type CrouchToggled struct {
	Crouched bool
}

type Jumped struct{}

type DashStarted struct{}

// SettingChanged carries a human-readable description of a pause-menu change.
type SettingChanged struct {
	Message string
}

var (
	CameraModeChangedEvent = events.NewEventType[CameraModeChanged]()
	MeshToggledEvent       = events.NewEventType[MeshToggled]()
	CrouchToggledEvent     = events.NewEventType[CrouchToggled]()
	JumpedEvent            = events.NewEventType[Jumped]()
	DashStartedEvent       = events.NewEventType[DashStarted]()
	SettingChangedEvent    = events.NewEventType[SettingChanged]()
)

// publishTick announces the edges found in one controller tick.
func publishTick(e *ecs.ECS, out controller.Output, crouched bool) {
	if out.CameraChanged {
		CameraModeChangedEvent.Publish(e.World, CameraModeChanged{Mode: out.Camera.Mode})
	}
	if out.MeshChanged {
		MeshToggledEvent.Publish(e.World, MeshToggled{Visible: out.MeshVisible})
	}
	if out.CrouchChanged {
		CrouchToggledEvent.Publish(e.World, CrouchToggled{Crouched: crouched})
	}
	if out.Jumped {
		JumpedEvent.Publish(e.World, Jumped{})
	}
	if out.DashStarted {
		DashStartedEvent.Publish(e.World, DashStarted{})
	}
}

// ProcessEvents delivers everything published this tick. It runs last.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
