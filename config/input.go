package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionSprint
	ActionDash
	ActionCrouchToggle
	ActionToggleMesh
	ActionToggleCamera
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionForward:      "forward",
	ActionBack:         "back",
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionJump:         "jump",
	ActionSprint:       "sprint",
	ActionDash:         "dash",
	ActionCrouchToggle: "crouchToggle",
	ActionToggleMesh:   "toggleMesh",
	ActionToggleCamera: "toggleCamera",
	ActionPause:        "pause",
	ActionDebug:        "debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Pointer look: radians per pixel of cursor motion
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
	InvertY          bool    `yaml:"invertY"`

	// Gamepad: deadzone for both sticks (0.0 to 1.0), right stick look speed in radians per tick
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
	StickLookSpeed float64 `yaml:"stickLookSpeed"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MouseSensitivity: 0.0025,
		InvertY:          false,
		AnalogDeadzone:   0.25,
		StickLookSpeed:   0.05,
		Bindings: map[ActionID]InputBinding{
			ActionForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyE},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionCrouchToggle: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionToggleMesh: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleCamera: {
				Keys: []ebiten.Key{ebiten.KeyV},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
