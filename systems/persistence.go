package systems

import (
	"encoding/json"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/controller"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

const settingsItem = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64  `json:"mouseSensitivity"`
	InvertY          bool     `json:"invertY"`
	ThirdPerson      bool     `json:"thirdPerson"`
	MeshVisible      bool     `json:"meshVisible"`
	SFXVolume        *float64 `json:"sfxVolume,omitempty"` // nil in files saved before volume existed
}

// settingsStore is the slice of gdata.Manager used here.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence opens the per-user data directory for settings storage.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error
// means nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize settings")
		return err
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// CurrentSettings snapshots the live input config and the player's camera rig.
func CurrentSettings(ecs *ecs.ECS) *SavedSettings {
	s := &SavedSettings{
		MouseSensitivity: cfg.Input.MouseSensitivity,
		InvertY:          cfg.Input.InvertY,
		ThirdPerson:      cfg.Camera.StartThirdPerson,
		MeshVisible:      cfg.Camera.StartMeshVisible,
	}
	volume := cfg.Audio.SFXVolume
	s.SFXVolume = &volume
	if entry, ok := components.Player.First(ecs.World); ok {
		rig := components.Player.Get(entry).Controller.Rig
		s.ThirdPerson = rig.Mode == controller.ThirdPerson
		s.MeshVisible = rig.MeshVisible
	}
	return s
}

// SaveCurrentSettings persists CurrentSettings, logging and ignoring failures.
func SaveCurrentSettings(ecs *ecs.ECS) {
	_ = SaveSettings(CurrentSettings(ecs))
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MouseSensitivity > 0 {
		cfg.Input.MouseSensitivity = saved.MouseSensitivity
	}
	cfg.Input.InvertY = saved.InvertY
	if v := saved.SFXVolume; v != nil && *v >= 0 && *v <= 1 {
		cfg.Audio.SFXVolume = *v
	}
	cfg.Camera.StartThirdPerson = saved.ThirdPerson
	cfg.Camera.StartMeshVisible = saved.MeshVisible
}
