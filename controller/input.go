package controller

import (
	"github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/gamemath"
)

// Input is the latest held state of every action plus the look accumulators.
// Host input handlers only mutate it; the controller reads it once per tick.
type Input struct {
	Held  [config.ActionCount]bool
	Yaw   float64 // radians, positive turns left
	Pitch float64 // radians, clamped to [-MaxPitch, MaxPitch]
}

// Pressed reports whether the action is currently held.
func (in *Input) Pressed(id config.ActionID) bool {
	return in.Held[id]
}

// Set records the held state of an action.
func (in *Input) Set(id config.ActionID, held bool) {
	in.Held[id] = held
}

// Release clears every held action, e.g. when focus is lost.
func (in *Input) Release() {
	in.Held = [config.ActionCount]bool{}
}

// Look accumulates pointer motion. dx/dy are in pixels (or stick units),
// sensitivity converts them to radians. Pitch is clamped on every update.
func (in *Input) Look(dx, dy, sensitivity float64, invertY bool) {
	in.Yaw -= dx * sensitivity
	if invertY {
		dy = -dy
	}
	in.Pitch = gamemath.Clamp(in.Pitch-dy*sensitivity, -config.MaxPitch, config.MaxPitch)
}
