package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzlegen/internal/scramble"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzlegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, f)

	// No overrides: the defaults come through untouched.
	cfg := f.ScrambleConfig()
	assert.Equal(t, scramble.DefaultConfig().Presets, cfg.Presets)

	palette, err := f.Palette()
	require.NoError(t, err)
	assert.Nil(t, palette)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "scramble: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestScrambleOverrides(t *testing.T) {
	path := writeConfig(t, `
scramble:
  words:
    3: [fox, owl, elk]
  presets:
    easy:
      word_length: 3
      min_words: 4
      max_words: 5
      min_font_size: 70
      max_font_size: 90
`)
	f, err := Load(path)
	require.NoError(t, err)

	cfg := f.ScrambleConfig()
	assert.Equal(t, []string{"fox", "owl", "elk"}, cfg.Words[3])
	assert.Equal(t,
		scramble.Preset{WordLength: 3, MinWords: 4, MaxWords: 5, MinFontSize: 70, MaxFontSize: 90},
		cfg.Presets[scramble.Easy])

	// Unmentioned tiers keep their defaults.
	assert.Equal(t, scramble.DefaultConfig().Presets[scramble.Hard], cfg.Presets[scramble.Hard])
	assert.Equal(t, scramble.DefaultConfig().Words[4], cfg.Words[4])
}

func TestPaletteOverride(t *testing.T) {
	path := writeConfig(t, `
colorwords:
  palette:
    - {name: crimson, hex: "#DC143C"}
    - {name: teal, hex: "#008080"}
`)
	f, err := Load(path)
	require.NoError(t, err)

	palette, err := f.Palette()
	require.NoError(t, err)
	require.Len(t, palette, 2)
	assert.Equal(t, "crimson", palette[0].Name)
	assert.InDelta(t, 0xDC/255.0, palette[0].Ink.R, 1e-9)
	assert.InDelta(t, 0x80/255.0, palette[1].Ink.G, 1e-9)
}

func TestPaletteBadHex(t *testing.T) {
	path := writeConfig(t, `
colorwords:
  palette:
    - {name: mud, hex: "brownish"}
`)
	f, err := Load(path)
	require.NoError(t, err)

	_, err = f.Palette()
	assert.Error(t, err)
}
