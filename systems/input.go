package systems

import (
	"strings"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// Actions the controller reads; global actions (pause, debug) stay in InputData.
var controllerActions = []cfg.ActionID{
	cfg.ActionForward,
	cfg.ActionBack,
	cfg.ActionLeft,
	cfg.ActionRight,
	cfg.ActionJump,
	cfg.ActionSprint,
	cfg.ActionDash,
	cfg.ActionCrouchToggle,
	cfg.ActionToggleMesh,
	cfg.ActionToggleCamera,
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Held keys are dropped while the window is unfocused
	if !ebiten.IsFocused() {
		return
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge left stick into the movement actions
	for _, m := range []struct {
		on     bool
		action cfg.ActionID
	}{
		{analogLeft, cfg.ActionLeft},
		{analogRight, cfg.ActionRight},
		{analogUp, cfg.ActionForward},
		{analogDown, cfg.ActionBack},
	} {
		if m.on {
			input.Current[m.action] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// UpdatePlayerInput copies the held actions and look motion into each
// player's controller input. Must run AFTER UpdateInput.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured
	cx, cy := ebiten.CursorPosition()
	sx, sy := rightStick(gamepadIDs)

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		applyHeld(&pi.Controller, input)

		if captured {
			if dx, dy, ok := cursorDelta(pi, cx, cy); ok {
				pi.Controller.Look(dx, dy, cfg.Input.MouseSensitivity, cfg.Input.InvertY)
			}
		} else {
			pi.CursorValid = false
		}
		if sx != 0 || sy != 0 {
			pi.Controller.Look(sx, sy, cfg.Input.StickLookSpeed, cfg.Input.InvertY)
		}
	})
}

// applyHeld mirrors the global held flags onto the controller input.
func applyHeld(in *controller.Input, input *components.InputData) {
	for _, id := range controllerActions {
		in.Set(id, input.Current[id])
	}
}

// cursorDelta returns the motion since the last captured frame. The first
// frame after a capture only records the position.
func cursorDelta(pi *components.PlayerInputData, x, y int) (dx, dy float64, ok bool) {
	if pi.CursorValid {
		dx, dy = float64(x-pi.CursorX), float64(y-pi.CursorY)
		ok = dx != 0 || dy != 0
	}
	pi.CursorX, pi.CursorY = x, y
	pi.CursorValid = true
	return dx, dy, ok
}

// ReleasePlayerInput clears held actions and forgets the cursor position,
// e.g. when the game pauses or loses focus.
func ReleasePlayerInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		pi.Controller.Release()
		pi.CursorValid = false
	})
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// rightStick returns the first right stick deflection outside the deadzone.
func rightStick(gamepads []ebiten.GamepadID) (x, y float64) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x = applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal))
		y = applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical))
		if x != 0 || y != 0 {
			return x, y
		}
	}
	return 0, 0
}

func applyDeadzone(v float64) float64 {
	if v > -cfg.Input.AnalogDeadzone && v < cfg.Input.AnalogDeadzone {
		return 0
	}
	return v
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
