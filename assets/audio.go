package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/yardwalk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects and caches the PCM per sound.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// LoadSFX returns a new player for the sound. PCM is built once per sound.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		tone, found := cfg.Sound.Tones[id]
		if !found {
			return nil, fmt.Errorf("no tone for sound %d", id)
		}
		pcm = SynthesizeTone(tone, l.context.SampleRate())
		l.sfxCache[id] = pcm
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format audio.Context players expect.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		amp := t.Volume * (1 - progress)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
