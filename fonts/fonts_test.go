package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Bold, Title, Small, Mono} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadFontErrors(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	require.NoError(t, LoadFont("tiny", goregular.TTF))
	assert.Panics(t, func() { FontName("missing").Get() })
}
