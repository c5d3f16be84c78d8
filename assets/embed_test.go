package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"jump.wav":             "jump.wav",
		"assets/jump.wav":      "jump.wav",
		"/home/x/assets/a.wav": "a.wav",
		"/tmp/b.wav":           "b.wav",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestEmbeddedSounds(t *testing.T) {
	for _, name := range []string{"jump.wav", "dash.wav", "death.wav", "music.wav"} {
		b, err := LoadFile("assets/" + name)
		require.NoError(t, err, name)
		assert.Equal(t, "RIFF", string(b[:4]))
	}
	assert.Len(t, Names(".wav"), 4)

	_, err := LoadAudioPlayer(nil, "jump.wav", false)
	assert.Error(t, err)
}
