package scramble

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"puzzlegen/internal/render"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
	safeMargin   = 20
	// spacingMargin keeps neighbouring words apart; collisionPad grows
	// the measured text box before any overlap test.
	spacingMargin = 20
	collisionPad  = 20
	maxAttempts   = 100
)

// rotations are the allowed word orientations, in degrees.
var rotations = [...]float64{0, 90, 180, 270}

var (
	ErrWordLength  = errors.New("scramble: word length does not match difficulty")
	ErrWordUniform = errors.New("scramble: word needs at least two distinct letters")
)

// Config carries the tunable parameters of the generator.
type Config struct {
	Words   map[int][]string
	Presets map[Difficulty]Preset
}

// DefaultConfig returns the built-in word lists and presets. The maps
// are fresh copies, safe for callers to override in place.
func DefaultConfig() Config {
	return Config{Words: maps.Clone(defaultWords), Presets: defaultPresets()}
}

// Request describes one puzzle to generate.
type Request struct {
	Difficulty Difficulty
	// Word forces the goal word; empty picks one from the word list.
	Word string
	// CorrectRatio is the fraction of correctly spelled copies. Negative
	// picks a random ratio in [0.2, 0.6].
	CorrectRatio float64
}

// Result reports what was actually drawn. Correct and Total count placed
// words only; copies that never found a free spot are dropped.
type Result struct {
	Word    string
	Correct int
	Total   int
	Path    string
}

// Generator renders word-scramble counting puzzles.
type Generator struct {
	cfg Config
	rng *rand.Rand
	log *zap.Logger
}

// New builds a Generator. A nil logger disables logging.
func New(cfg Config, rng *rand.Rand, log *zap.Logger) (*Generator, error) {
	if cfg.Words == nil {
		cfg.Words = defaultWords
	}
	if cfg.Presets == nil {
		cfg.Presets = defaultPresets()
	}
	for d, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s preset: %w", d, err)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{cfg: cfg, rng: rng, log: log}, nil
}

// Generate renders one puzzle into dir.
func (g *Generator) Generate(req Request, dir string) (Result, error) {
	preset, ok := g.cfg.Presets[req.Difficulty]
	if !ok {
		return Result{}, fmt.Errorf("scramble: unknown difficulty %q", req.Difficulty)
	}

	word, err := g.pickWord(req, preset)
	if err != nil {
		return Result{}, err
	}

	total := preset.MinWords + g.rng.IntN(preset.MaxWords-preset.MinWords+1)
	ratio := req.CorrectRatio
	if ratio < 0 {
		ratio = 0.2 + g.rng.Float64()*0.4
	}
	if ratio > 1 {
		ratio = 1
	}
	wantCorrect := max(1, int(float64(total)*ratio))

	dc := render.NewCanvas(canvasWidth, canvasHeight, gg.White)
	dc.SetColor(gg.Black.Color())

	var placed []placedBox
	res := Result{Word: word}
	for i := 0; i < total; i++ {
		correct := i < wantCorrect
		copyText := word
		if !correct {
			copyText = scrambleWord(g.rng, word)
		}

		// Whole-point sizes keep the face cache effective.
		size := preset.MinFontSize + float64(g.rng.IntN(int(preset.MaxFontSize-preset.MinFontSize)+1))
		angle := rotations[g.rng.IntN(len(rotations))]

		box, err := g.placeWord(dc, copyText, size, angle, placed)
		if err != nil {
			return Result{}, err
		}
		if box == nil {
			g.log.Debug("no room for word copy",
				zap.String("word", copyText), zap.Int("index", i))
			continue
		}
		placed = append(placed, *box)
		res.Total++
		if correct {
			res.Correct++
		}
	}

	name := fmt.Sprintf("%s_%d.png", word, res.Correct)
	path, err := render.SavePNG(dc, dir, name)
	if err != nil {
		return Result{}, err
	}
	res.Path = path

	g.log.Info("generated scramble puzzle",
		zap.String("word", res.Word),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.String("path", res.Path))
	return res, nil
}

func (g *Generator) pickWord(req Request, preset Preset) (string, error) {
	if req.Word != "" {
		word := strings.ToLower(req.Word)
		if len(word) != preset.WordLength {
			return "", fmt.Errorf("%w: got %d letters, want %d",
				ErrWordLength, len(word), preset.WordLength)
		}
		if !hasDistinctLetters(word) {
			return "", ErrWordUniform
		}
		return word, nil
	}
	list := g.cfg.Words[preset.WordLength]
	if len(list) == 0 {
		return "", fmt.Errorf("scramble: no words of length %d", preset.WordLength)
	}
	return list[g.rng.IntN(len(list))], nil
}

// placeWord tries up to maxAttempts random positions for the word and
// draws it at the first spot that stays in bounds and clear of every
// placed box. Returns nil when no spot was found.
func (g *Generator) placeWord(dc *gg.Context, word string, size, angleDeg float64, placed []placedBox) (*placedBox, error) {
	face, err := render.Face(render.Bold, size)
	if err != nil {
		return nil, err
	}
	dc.SetFont(face)
	textW, textH := dc.MeasureString(word)

	// Collision extents follow the rotated text: quarter turns swap the
	// axes.
	boxW, boxH := textW+collisionPad, textH+collisionPad
	if angleDeg == 90 || angleDeg == 270 {
		boxW, boxH = boxH, boxW
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		center := g.sampleCenter(boxW, boxH)
		box := placedBox{center: center, w: boxW, h: boxH, angle: 0}
		// The collision box is axis-aligned: quarter-turn rotations were
		// already folded into the extents above.
		c := box.corners()
		if !inBounds(c, canvasWidth, canvasHeight, safeMargin) {
			continue
		}
		free := true
		for _, p := range placed {
			if overlaps(c, p.corners(), spacingMargin) {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		dc.Push()
		dc.RotateAbout(angleDeg*math.Pi/180, center.X, center.Y)
		dc.DrawStringAnchored(word, center.X, center.Y, 0.5, 0.5)
		dc.Pop()
		return &box, nil
	}
	return nil, nil
}

// sampleCenter picks a uniform center that keeps a boxW x boxH rectangle
// inside the canvas, preferring the safe margin but shrinking it when
// the box barely fits.
func (g *Generator) sampleCenter(boxW, boxH float64) gg.Point {
	sample := func(extent, limit float64) float64 {
		lo, hi := extent/2+safeMargin, limit-extent/2-safeMargin
		if lo >= hi {
			lo, hi = extent/2, limit-extent/2
		}
		if lo >= hi {
			return limit / 2
		}
		return lo + g.rng.Float64()*(hi-lo)
	}
	return gg.Pt(sample(boxW, canvasWidth), sample(boxH, canvasHeight))
}

// scrambleWord shuffles the word's letters until the result differs from
// the original. The caller guarantees at least two distinct letters.
func scrambleWord(rng *rand.Rand, word string) string {
	runes := []rune(word)
	for {
		rng.Shuffle(len(runes), func(i, j int) {
			runes[i], runes[j] = runes[j], runes[i]
		})
		if s := string(runes); s != word {
			return s
		}
	}
}

func hasDistinctLetters(word string) bool {
	first := rune(-1)
	for _, r := range word {
		if first == -1 {
			first = r
			continue
		}
		if r != first {
			return true
		}
	}
	return false
}
