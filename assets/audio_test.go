package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/yardwalk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeTone(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 880, Duration: 0.1, Volume: 0.5}
	pcm := SynthesizeTone(tone, 1000)
	require.Len(t, pcm, 100*4)

	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		left := int16(binary.LittleEndian.Uint16(pcm[i:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		assert.Equal(t, left, right, "mono signal on both channels")
		if v := int(left); v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	assert.LessOrEqual(t, peak, 32767/2+1)
	assert.Greater(t, peak, 0)
}

func TestSynthesizeToneEmpty(t *testing.T) {
	assert.Nil(t, SynthesizeTone(cfg.Tone{StartHz: 440}, 44100))
}

func TestEveryToneIsAudible(t *testing.T) {
	for id, tone := range cfg.Sound.Tones {
		assert.NotEmpty(t, SynthesizeTone(tone, cfg.Audio.SampleRate), "sound %d", id)
	}
}
