package systems

import (
	"sync"

	"github.com/automoto/yardwalk/assets"
	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// SubscribeAudio turns player and settings events into sound effects.
func SubscribeAudio(e *ecs.ECS) {
	JumpedEvent.Subscribe(e.World, func(w donburi.World, ev Jumped) {
		QueueSFX(e, cfg.SoundJump)
	})
	DashStartedEvent.Subscribe(e.World, func(w donburi.World, ev DashStarted) {
		QueueSFX(e, cfg.SoundDash)
	})
	CrouchToggledEvent.Subscribe(e.World, func(w donburi.World, ev CrouchToggled) {
		QueueSFX(e, cfg.SoundCrouch)
	})
	CameraModeChangedEvent.Subscribe(e.World, func(w donburi.World, ev CameraModeChanged) {
		QueueSFX(e, cfg.SoundToggle)
	})
	MeshToggledEvent.Subscribe(e.World, func(w donburi.World, ev MeshToggled) {
		QueueSFX(e, cfg.SoundToggle)
	})
	SettingChangedEvent.Subscribe(e.World, func(w donburi.World, ev SettingChanged) {
		QueueSFX(e, cfg.SoundMenuSelect)
	})
}

// QueueSFX schedules a sound for the next UpdateAudio.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	data := getOrCreateAudio(e)
	data.PendingSFX = append(data.PendingSFX, id)
}

// UpdateAudio plays the queued sound effects.
func UpdateAudio(e *ecs.ECS) {
	data := getOrCreateAudio(e)
	if len(data.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()

	for _, id := range data.PendingSFX {
		playSFX(id)
	}
	data.PendingSFX = data.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if cfg.Audio.SFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		log.Debug().Err(err).Msg("play sfx")
		return
	}
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Audio))
	}
	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}
