// Package config loads optional YAML overrides for the puzzle
// generators: word lists, difficulty presets, and the color palette.
// Anything the file leaves out keeps its built-in default.
package config

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"puzzlegen/internal/colorwords"
	"puzzlegen/internal/scramble"
)

// File mirrors the YAML override file.
type File struct {
	Scramble   Scramble   `yaml:"scramble"`
	ColorWords ColorWords `yaml:"colorwords"`
}

// Scramble overrides the word-scramble generator.
type Scramble struct {
	Words   map[int][]string           `yaml:"words"`
	Presets map[string]scramble.Preset `yaml:"presets"`
}

// ColorWords overrides the color-counting generator.
type ColorWords struct {
	Palette []PaletteEntry `yaml:"palette"`
}

// PaletteEntry is one named color given as a #RRGGBB hex string.
type PaletteEntry struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Load reads the file at path. An empty path yields an empty override
// set, so callers need no nil checks.
func Load(path string) (*File, error) {
	var f File
	if path == "" {
		return &f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// ScrambleConfig merges the overrides over the generator defaults.
func (f *File) ScrambleConfig() scramble.Config {
	cfg := scramble.DefaultConfig()
	for length, words := range f.Scramble.Words {
		cfg.Words[length] = words
	}
	for name, preset := range f.Scramble.Presets {
		cfg.Presets[scramble.Difficulty(name)] = preset
	}
	return cfg
}

// Palette returns the override palette, or nil when the file does not
// set one.
func (f *File) Palette() ([]colorwords.NamedColor, error) {
	if len(f.ColorWords.Palette) == 0 {
		return nil, nil
	}
	palette := make([]colorwords.NamedColor, 0, len(f.ColorWords.Palette))
	for _, e := range f.ColorWords.Palette {
		ink, err := parseHex(e.Hex)
		if err != nil {
			return nil, fmt.Errorf("config: palette entry %q: %w", e.Name, err)
		}
		palette = append(palette, colorwords.NamedColor{Name: e.Name, Ink: ink})
	}
	return palette, nil
}

func parseHex(s string) (gg.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return gg.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255), nil
}
