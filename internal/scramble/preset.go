package scramble

import "fmt"

// Difficulty names a preset bucket.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Preset holds the tunable parameters for one difficulty tier.
type Preset struct {
	WordLength  int     `yaml:"word_length"`
	MinWords    int     `yaml:"min_words"`
	MaxWords    int     `yaml:"max_words"`
	MinFontSize float64 `yaml:"min_font_size"`
	MaxFontSize float64 `yaml:"max_font_size"`
}

// Validate reports the first inconsistency in the preset.
func (p Preset) Validate() error {
	switch {
	case p.WordLength < 2:
		return fmt.Errorf("scramble: word length %d too short", p.WordLength)
	case p.MinWords < 1 || p.MaxWords < p.MinWords:
		return fmt.Errorf("scramble: bad word count range [%d, %d]", p.MinWords, p.MaxWords)
	case p.MinFontSize <= 0 || p.MaxFontSize < p.MinFontSize:
		return fmt.Errorf("scramble: bad font size range [%g, %g]", p.MinFontSize, p.MaxFontSize)
	}
	return nil
}

func defaultPresets() map[Difficulty]Preset {
	return map[Difficulty]Preset{
		Easy:   {WordLength: 3, MinWords: 5, MaxWords: 6, MinFontSize: 80, MaxFontSize: 100},
		Medium: {WordLength: 4, MinWords: 7, MaxWords: 8, MinFontSize: 60, MaxFontSize: 80},
		Hard:   {WordLength: 5, MinWords: 9, MaxWords: 10, MinFontSize: 60, MaxFontSize: 80},
	}
}
