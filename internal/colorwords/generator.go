package colorwords

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"puzzlegen/internal/render"
)

const (
	canvasWidth  = 800
	canvasHeight = 600

	minWords = 1
	maxWords = 5
)

var background = gg.RGB(240.0/255, 240.0/255, 240.0/255)

// ErrSmallPalette is returned when the palette cannot supply enough
// distinct (name, ink) pairs.
var ErrSmallPalette = errors.New("colorwords: palette needs at least two colors")

// pairing is one drawn row: the named color and the ink it is shown in.
type pairing struct {
	named, shown NamedColor
}

// Result reports one generated puzzle.
type Result struct {
	// Colors is the puzzle answer: distinct colors named or shown.
	Colors int
	Words  int
	ID     string
	Path   string
}

// Generator renders Stroop color-counting puzzles.
type Generator struct {
	palette []NamedColor
	rng     *rand.Rand
	log     *zap.Logger
}

// New builds a Generator over the given palette (nil means the default).
// A nil logger disables logging.
func New(palette []NamedColor, rng *rand.Rand, log *zap.Logger) (*Generator, error) {
	if palette == nil {
		palette = DefaultPalette()
	}
	if len(palette) < 2 {
		return nil, ErrSmallPalette
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{palette: palette, rng: rng, log: log}, nil
}

// Generate renders one puzzle with the given number of word rows
// (clamped to [1, 5]) into dir.
func (g *Generator) Generate(words int, dir string) (Result, error) {
	words = min(max(words, minWords), maxWords)
	// A small palette bounds the distinct pairings available.
	words = min(words, len(g.palette)*(len(g.palette)-1))

	pairs := g.pickPairs(words)
	fontSize := math.Max(30, 240/math.Sqrt(float64(words)))
	face, err := render.Face(render.Bold, fontSize)
	if err != nil {
		return Result{}, err
	}

	dc := render.NewCanvas(canvasWidth, canvasHeight, background)
	dc.SetFont(face)
	for i, p := range pairs {
		dc.SetColor(p.shown.Ink.Color())
		x, y := rowPosition(i, words)
		dc.DrawStringAnchored(strings.ToUpper(p.named.Name), x, y, 0.5, 0.5)
	}

	res := Result{
		Colors: countColors(pairs),
		Words:  words,
		ID:     shortID(),
	}
	name := fmt.Sprintf("%d_%s.png", res.Colors, res.ID)
	res.Path, err = render.SavePNG(dc, dir, name)
	if err != nil {
		return Result{}, err
	}

	g.log.Info("generated color-counting puzzle",
		zap.Int("words", res.Words),
		zap.Int("colors", res.Colors),
		zap.String("path", res.Path))
	return res, nil
}

// pickPairs draws n (named, shown) pairs with distinct inks per row and
// no repeated pairing across rows.
func (g *Generator) pickPairs(n int) []pairing {
	used := make(map[[2]string]bool, n)
	pairs := make([]pairing, 0, n)
	for len(pairs) < n {
		named := g.palette[g.rng.IntN(len(g.palette))]
		shown := g.palette[g.rng.IntN(len(g.palette))]
		if shown.Name == named.Name {
			continue
		}
		key := [2]string{named.Name, shown.Name}
		if used[key] {
			continue
		}
		used[key] = true
		pairs = append(pairs, pairing{named: named, shown: shown})
	}
	return pairs
}

// rowPosition centers a single word, otherwise spreads rows down the
// canvas.
func rowPosition(i, n int) (x, y float64) {
	x = canvasWidth / 2
	if n <= 1 {
		return x, canvasHeight / 2
	}
	spacing := float64(canvasHeight) / float64(n+1)
	return x, (float64(i) + 0.7) * spacing
}

// countColors is the puzzle answer: how many distinct colors appear,
// counting both the names spelled out and the inks they are drawn in.
func countColors(pairs []pairing) int {
	seen := map[string]bool{}
	for _, p := range pairs {
		seen[p.named.Name] = true
		seen[p.shown.Name] = true
	}
	return len(seen)
}

// shortID returns a 4-character uppercase identifier for filenames.
func shortID() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:4]
}
