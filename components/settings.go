package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles that are not part of the tuning config.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
