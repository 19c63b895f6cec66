package config

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerConfig contains all player movement tuning. Speeds are in world
// units per second, durations in ticks.
type PlayerConfig struct {
	// Locomotion
	WalkSpeed        float64 `yaml:"walkSpeed"`
	CrouchSpeed      float64 `yaml:"crouchSpeed"`
	SprintMultiplier float64 `yaml:"sprintMultiplier"`

	// Dash
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashDuration int     `yaml:"dashDuration"` // ticks

	// Jump
	JumpStrength       float64 `yaml:"jumpStrength"`
	CrouchJumpStrength float64 `yaml:"crouchJumpStrength"`
	GroundedEpsilon    float64 `yaml:"groundedEpsilon"` // |vy| below this counts as grounded
	GroundSensor       string  `yaml:"groundSensor"`    // GroundSensorVelocity or GroundSensorContact

	// Capsule dimensions
	StandHeight  float64 `yaml:"standHeight"`
	CrouchHeight float64 `yaml:"crouchHeight"`
	Radius       float64 `yaml:"radius"`
	Density      float64 `yaml:"density"`

	// Eye offset above the body centre
	EyeHeight       float64 `yaml:"eyeHeight"`
	CrouchEyeHeight float64 `yaml:"crouchEyeHeight"`
}

// Ground sensors the player can use to decide whether it may jump.
const (
	GroundSensorVelocity = "velocity" // |vy| below GroundedEpsilon
	GroundSensorContact  = "contact"  // the physics world reports a support underneath
)

// HeadBobConfig describes one head-bob profile.
type HeadBobConfig struct {
	Frequency  float64 `yaml:"frequency"`  // radians of phase per tick
	AmplitudeX float64 `yaml:"amplitudeX"` // sideways sway
	AmplitudeY float64 `yaml:"amplitudeY"` // vertical bounce
}

// CameraConfig contains camera rig behaviour configuration
type CameraConfig struct {
	FOV  float64 `yaml:"fov"` // degrees
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`

	// Head-bob profiles, picked by movement state
	WalkBob   HeadBobConfig `yaml:"walkBob"`
	SprintBob HeadBobConfig `yaml:"sprintBob"`
	CrouchBob HeadBobConfig `yaml:"crouchBob"`
	BobLerp   float64       `yaml:"bobLerp"` // smoothing of the bob offset (0.0-1.0)

	// Roll
	StrafeRoll float64 `yaml:"strafeRoll"` // radians, +left / -right
	DashTilt   float64 `yaml:"dashTilt"`   // radians at full sideways dash
	RollLerp   float64 `yaml:"rollLerp"`

	// Third person
	ThirdPersonOffset  mgl64.Vec3 `yaml:"thirdPersonOffset"`
	ThirdPersonLerp    float64    `yaml:"thirdPersonLerp"`
	ThirdPersonLookAtY float64    `yaml:"thirdPersonLookAtY"` // look-at height above body centre

	StartThirdPerson bool `yaml:"startThirdPerson"`
	StartMeshVisible bool `yaml:"startMeshVisible"`
}

// PhysicsConfig contains world simulation tuning
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Timestep       float64 `yaml:"timestep"` // seconds per Step
	MaxFallSpeed   float64 `yaml:"maxFallSpeed"`
	GroundFriction float64 `yaml:"groundFriction"` // horizontal deceleration on the ground, units/s²
	SleepSpeed     float64 `yaml:"sleepSpeed"`
	StepHeight     float64 `yaml:"stepHeight"` // ledges lower than this do not block sideways moves
	KillPlaneY     float64 `yaml:"killPlaneY"` // bodies below this height are respawned

	// Broadphase grid
	ArenaHalfSize float64 `yaml:"arenaHalfSize"`
	CellSize      int     `yaml:"cellSize"`
	GridScale     float64 `yaml:"gridScale"` // broadphase units per world unit
}

// PropKind names a physics-driven scenery object
type PropKind string

const (
	PropCrate  PropKind = "crate"
	PropBarrel PropKind = "barrel"
)

// PropTypeConfig describes a prop archetype
type PropTypeConfig struct {
	Size    float64 // crate edge length or barrel height
	Radius  float64 // barrels only
	Density float64
	Color   color.RGBA // base face colour
}

// PropsConfig contains prop archetype configuration
type PropsConfig struct {
	Types      map[PropKind]PropTypeConfig
	DropHeight float64 // props spawn this far above their map position
}

// SceneConfig contains the static scenery setup
type SceneConfig struct {
	FloorTile      float64
	FloorColorA    color.RGBA
	FloorColorB    color.RGBA
	FloorThickness float64
	WallHeight     float64 // perimeter fence; zero disables it
	WallThickness  float64
	WallColor      color.RGBA
	SkyTop         color.RGBA
	SkyHorizon     color.RGBA
	SunDirection   mgl64.Vec3
	SunColor       color.RGBA
	Ambient        float64
	LevelPath      string
}

// ToastConfig contains on-screen notification configuration
type ToastConfig struct {
	Duration  float32 // seconds to fade out
	Hold      float32 // seconds at full alpha before fading
	Color     color.RGBA
	BoxColor  color.RGBA
	TopMargin float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay     bool
	MinimapSize float64
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"-"`
	TPS    int    `yaml:"-"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Props PropsConfig
var Scene SceneConfig
var Toast ToastConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "yardwalk",
		TPS:    60,
	}

	Player = PlayerConfig{
		WalkSpeed:        4.0,
		CrouchSpeed:      2.0,
		SprintMultiplier: 1.75,

		DashSpeed:    12.0,
		DashDuration: 15,

		JumpStrength:       5.5,
		CrouchJumpStrength: 3.5,
		GroundedEpsilon:    0.05,
		GroundSensor:       GroundSensorVelocity,

		StandHeight:  1.8,
		CrouchHeight: 1.0,
		Radius:       0.35,
		Density:      1.0,

		EyeHeight:       0.7,
		CrouchEyeHeight: 0.3,
	}

	Camera = CameraConfig{
		FOV:  70,
		Near: 0.05,
		Far:  200,

		WalkBob:   HeadBobConfig{Frequency: 0.18, AmplitudeX: 0.025, AmplitudeY: 0.045},
		SprintBob: HeadBobConfig{Frequency: 0.27, AmplitudeX: 0.04, AmplitudeY: 0.07},
		CrouchBob: HeadBobConfig{Frequency: 0.11, AmplitudeX: 0.015, AmplitudeY: 0.025},
		BobLerp:   0.2,

		StrafeRoll: 0.035,
		DashTilt:   0.09,
		RollLerp:   0.12,

		ThirdPersonOffset:  mgl64.Vec3{0, 1.6, 4.0},
		ThirdPersonLerp:    0.12,
		ThirdPersonLookAtY: 0.6,

		StartThirdPerson: false,
		StartMeshVisible: true,
	}

	Physics = PhysicsConfig{
		Gravity:        9.81,
		Timestep:       1.0 / 60.0,
		MaxFallSpeed:   30.0,
		GroundFriction: 8.0,
		SleepSpeed:     0.01,
		StepHeight:     0.05,
		KillPlaneY:     -20,

		ArenaHalfSize: 64,
		CellSize:      16,
		GridScale:     16,
	}

	Props = PropsConfig{
		Types: map[PropKind]PropTypeConfig{
			PropCrate: {
				Size:    1.0,
				Density: 0.6,
				Color:   color.RGBA{R: 170, G: 120, B: 70, A: 255},
			},
			PropBarrel: {
				Size:    1.2,
				Radius:  0.4,
				Density: 0.8,
				Color:   color.RGBA{R: 120, G: 40, B: 35, A: 255},
			},
		},
		DropHeight: 2.0,
	}

	Scene = SceneConfig{
		FloorTile:      2.0,
		FloorColorA:    color.RGBA{R: 88, G: 110, B: 80, A: 255},
		FloorColorB:    color.RGBA{R: 70, G: 92, B: 64, A: 255},
		FloorThickness: 0.5,
		WallHeight:     1.2,
		WallThickness:  0.4,
		WallColor:      color.RGBA{R: 150, G: 140, B: 120, A: 255},
		SkyTop:         color.RGBA{R: 40, G: 90, B: 170, A: 255},
		SkyHorizon:     color.RGBA{R: 175, G: 205, B: 235, A: 255},
		SunDirection:   mgl64.Vec3{-0.4, 0.8, -0.45}.Normalize(),
		SunColor:       color.RGBA{R: 255, G: 244, B: 214, A: 255},
		Ambient:        0.45,
		LevelPath:      "levels/yard.tmx",
	}

	Toast = ToastConfig{
		Duration:  0.6,
		Hold:      1.0,
		Color:     White,
		BoxColor:  color.RGBA{R: 0, G: 0, B: 0, A: 150},
		TopMargin: 24,
	}

	Debug = DebugConfig{
		Overlay:     false,
		MinimapSize: 160,
	}
}

// MaxPitch is the pitch clamp applied to the look accumulator.
const MaxPitch = math.Pi / 2
