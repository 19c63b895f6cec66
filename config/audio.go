package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDash
	SoundCrouch
	SoundToggle
	SoundMenuSelect
)

// Tone is a synthesized sound effect: a sine sweep with a linear fade out.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0, multiplied with AudioConfig.SFXVolume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"-"`
	SFXVolume  float64 `yaml:"sfxVolume"` // 0.0 - 1.0
	VolumeStep float64 `yaml:"volumeStep"`
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		VolumeStep: 0.25,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:       {StartHz: 320, EndHz: 640, Duration: 0.12, Volume: 0.6},
			SoundDash:       {StartHz: 900, EndHz: 220, Duration: 0.18, Volume: 0.5},
			SoundCrouch:     {StartHz: 260, EndHz: 180, Duration: 0.08, Volume: 0.4},
			SoundToggle:     {StartHz: 660, EndHz: 660, Duration: 0.05, Volume: 0.3},
			SoundMenuSelect: {StartHz: 880, EndHz: 990, Duration: 0.06, Volume: 0.3},
		},
	}
}
