package components

import (
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used for global input (pause, debug) that runs even while paused.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData is the controller-facing input of the player entity.
// Host polling writes held flags and look deltas; the controller reads it once per tick.
type PlayerInputData struct {
	Controller controller.Input

	// Last captured cursor position; valid when CursorValid is set.
	CursorX, CursorY int
	CursorValid      bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
