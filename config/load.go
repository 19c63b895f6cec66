package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// fileConfig mirrors the tuning sections that may be overridden from YAML.
// Fields are pointers to the live globals so absent keys keep their defaults.
type fileConfig struct {
	Window  *Config        `yaml:"window"`
	Player  *PlayerConfig  `yaml:"player"`
	Camera  *CameraConfig  `yaml:"camera"`
	Physics *PhysicsConfig `yaml:"physics"`
	Input   *InputConfig   `yaml:"input"`
	Audio   *AudioConfig   `yaml:"audio"`
}

// ErrInvalidConfig is returned by Validate for out-of-range tuning.
var ErrInvalidConfig = errors.New("invalid config")

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the global configuration and validates the result.
func Apply(data []byte) error {
	// Decode into copies so a failed load leaves the globals untouched.
	window, player, camera, physics, input, sound := *C, Player, Camera, Physics, Input, Audio
	fc := fileConfig{
		Window:  &window,
		Player:  &player,
		Camera:  &camera,
		Physics: &physics,
		Input:   &input,
		Audio:   &sound,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(&player, &camera, &physics); err != nil {
		return err
	}
	if sound.SFXVolume < 0 || sound.SFXVolume > 1 {
		return fmt.Errorf("%w: sfxVolume must be within [0, 1]", ErrInvalidConfig)
	}

	*C = window
	Player = player
	Camera = camera
	Physics = physics
	Input = input
	Audio = sound
	return nil
}

// Validate checks the tuning values the controller and physics world divide by or count down.
func Validate(player *PlayerConfig, camera *CameraConfig, physics *PhysicsConfig) error {
	switch {
	case player.WalkSpeed <= 0 || player.CrouchSpeed <= 0:
		return fmt.Errorf("%w: movement speeds must be positive", ErrInvalidConfig)
	case player.SprintMultiplier < 1:
		return fmt.Errorf("%w: sprintMultiplier must be at least 1", ErrInvalidConfig)
	case player.DashDuration < 0:
		return fmt.Errorf("%w: dashDuration must not be negative", ErrInvalidConfig)
	case player.CrouchHeight <= 0 || player.StandHeight < player.CrouchHeight:
		return fmt.Errorf("%w: crouchHeight must be positive and not above standHeight", ErrInvalidConfig)
	case player.GroundSensor != "" && player.GroundSensor != GroundSensorVelocity && player.GroundSensor != GroundSensorContact:
		return fmt.Errorf("%w: unknown groundSensor %q", ErrInvalidConfig, player.GroundSensor)
	case player.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidConfig)
	case player.GroundedEpsilon <= 0:
		return fmt.Errorf("%w: groundedEpsilon must be positive", ErrInvalidConfig)
	case !unitLerp(camera.BobLerp) || !unitLerp(camera.RollLerp) || !unitLerp(camera.ThirdPersonLerp):
		return fmt.Errorf("%w: bobLerp, rollLerp and thirdPersonLerp must be within (0, 1]", ErrInvalidConfig)
	case physics.Timestep <= 0:
		return fmt.Errorf("%w: timestep must be positive", ErrInvalidConfig)
	case physics.CellSize <= 0 || physics.GridScale <= 0 || physics.ArenaHalfSize <= 0:
		return fmt.Errorf("%w: broadphase grid must be positive", ErrInvalidConfig)
	}
	return nil
}

func unitLerp(t float64) bool {
	return t > 0 && t <= 1
}
