package systems

import (
	"fmt"
	"math"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/gamemath"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Mouse sensitivity bounds and step factor for the pause menu.
const (
	MinSensitivity  = 0.0005
	MaxSensitivity  = 0.01
	SensitivityStep = 1.25
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// UpdateSettings handles the global toggles that work paused or not.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		ToggleDebug(ecs)
	}
}

func ToggleDebug(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	log.Debug().Bool("debug", settings.Debug).Msg("debug overlay toggled")
}

// AdjustSensitivity scales the mouse sensitivity by SensitivityStep per step,
// clamped to [MinSensitivity, MaxSensitivity], and returns the new value.
func AdjustSensitivity(ecs *ecs.ECS, steps int) float64 {
	s := cfg.Input.MouseSensitivity * math.Pow(SensitivityStep, float64(steps))
	cfg.Input.MouseSensitivity = gamemath.Clamp(s, MinSensitivity, MaxSensitivity)
	SettingChangedEvent.Publish(ecs.World, SettingChanged{
		Message: "Sensitivity " + SensitivityLabel(),
	})
	return cfg.Input.MouseSensitivity
}

// SensitivityLabel formats the current sensitivity relative to the default.
func SensitivityLabel() string {
	return fmt.Sprintf("%.2fx", cfg.Input.MouseSensitivity/defaultSensitivity)
}

var defaultSensitivity = cfg.Input.MouseSensitivity

func ToggleInvertY(ecs *ecs.ECS) bool {
	cfg.Input.InvertY = !cfg.Input.InvertY
	msg := "Invert Y off"
	if cfg.Input.InvertY {
		msg = "Invert Y on"
	}
	SettingChangedEvent.Publish(ecs.World, SettingChanged{Message: msg})
	return cfg.Input.InvertY
}

// InvertY reports whether vertical look is inverted.
func InvertY() bool {
	return cfg.Input.InvertY
}

// AdjustVolume moves the effects volume by VolumeStep per step, clamped to [0, 1].
func AdjustVolume(ecs *ecs.ECS, steps int) float64 {
	v := cfg.Audio.SFXVolume + float64(steps)*cfg.Audio.VolumeStep
	cfg.Audio.SFXVolume = gamemath.Clamp(v, 0, 1)
	SettingChangedEvent.Publish(ecs.World, SettingChanged{
		Message: "Volume " + VolumeLabel(),
	})
	return cfg.Audio.SFXVolume
}

// VolumeLabel formats the effects volume as a percentage.
func VolumeLabel() string {
	return fmt.Sprintf("%.0f%%", math.Round(cfg.Audio.SFXVolume*100))
}
