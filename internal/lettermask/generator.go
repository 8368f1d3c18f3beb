package lettermask

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"slices"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"puzzlegen/internal/render"
)

// Difficulty names a tier of the puzzle.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Tier holds the layout parameters of one difficulty.
type Tier struct {
	Letters int
	Options int
	Width   int
}

var tiers = map[Difficulty]Tier{
	Easy:   {Letters: 2, Options: 3, Width: 900},
	Medium: {Letters: 3, Options: 4, Width: 1400},
	Hard:   {Letters: 4, Options: 4, Width: 1900},
}

const (
	canvasHeight  = 600
	questionSize  = 150
	numberSize    = 36
	maskStrips    = 5
	boxPadding    = 10
	borderWidth   = 3
	maskOverhang  = 5
	cellSideInset = 10
)

var borderColor = gg.RGB(100.0/255, 100.0/255, 100.0/255)

// Result reports one generated puzzle.
type Result struct {
	Difficulty Difficulty
	Question   string
	// Answer is the 1-based number of the matching option.
	Answer int
	Path   string
}

// Generator renders masked letter-matching puzzles.
type Generator struct {
	rng *rand.Rand
	log *zap.Logger
}

// New builds a Generator. A nil logger disables logging.
func New(rng *rand.Rand, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{rng: rng, log: log}
}

// TierFor returns the parameters of the given difficulty.
func TierFor(d Difficulty) (Tier, error) {
	t, ok := tiers[d]
	if !ok {
		return Tier{}, fmt.Errorf("lettermask: unknown difficulty %q", d)
	}
	return t, nil
}

// Generate renders one puzzle of the given difficulty into dir. The file
// is named <question>_<answer>.png.
func (g *Generator) Generate(d Difficulty, dir string) (Result, error) {
	tier, err := TierFor(d)
	if err != nil {
		return Result{}, err
	}

	question := randomLetters(g.rng, tier.Letters)
	options, correct := g.options(question, tier.Options)

	dc := render.NewCanvas(tier.Width, canvasHeight, gg.White)
	if err := g.draw(dc, tier, question, options); err != nil {
		return Result{}, err
	}

	res := Result{Difficulty: d, Question: question, Answer: correct + 1}
	name := fmt.Sprintf("%s_%d.png", question, res.Answer)
	res.Path, err = render.SavePNG(dc, dir, name)
	if err != nil {
		return Result{}, err
	}

	g.log.Info("generated letter-matching puzzle",
		zap.String("difficulty", string(d)),
		zap.String("question", res.Question),
		zap.Int("answer", res.Answer),
		zap.String("path", res.Path))
	return res, nil
}

// GenerateAll renders count puzzles per difficulty into per-difficulty
// subdirectories of dir.
func (g *Generator) GenerateAll(count int, dir string) ([]Result, error) {
	var results []Result
	for _, d := range Difficulties {
		for i := 0; i < count; i++ {
			res, err := g.Generate(d, filepath.Join(dir, string(d)))
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// options builds the option strings with the correct answer at a random
// index. Distractors differ from the question in exactly one position.
// The whole set is regenerated if a duplicate slips in.
func (g *Generator) options(question string, n int) (opts []string, correctIdx int) {
	for {
		correctIdx = g.rng.IntN(n)
		opts = opts[:0]
		for i := 0; i < n; i++ {
			if i == correctIdx {
				opts = append(opts, question)
				continue
			}
			for {
				cand := mutate(g.rng, question)
				if cand != question && !slices.Contains(opts, cand) {
					opts = append(opts, cand)
					break
				}
			}
		}
		if unique(opts) {
			return opts, correctIdx
		}
	}
}

func unique(ss []string) bool {
	seen := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			return false
		}
		seen[s] = struct{}{}
	}
	return true
}

func (g *Generator) draw(dc *gg.Context, tier Tier, question string, options []string) error {
	letterFace, err := render.Face(render.Regular, questionSize)
	if err != nil {
		return err
	}
	numberFace, err := render.Face(render.Regular, numberSize)
	if err != nil {
		return err
	}

	width := float64(tier.Width)

	// Question centered near the top.
	dc.SetFont(letterFace)
	dc.SetColor(gg.Black.Color())
	dc.DrawStringAnchored(question, width/2, float64(canvasHeight)/8+60, 0.5, 0.5)

	// Options in equal columns along the bottom.
	colWidth := width / float64(len(options))
	cellW := colWidth - 2*cellSideInset
	cellH := float64(canvasHeight) / 3
	cellTop := float64(canvasHeight)/3 + 70

	for i, opt := range options {
		cellLeft := float64(i)*colWidth + cellSideInset
		cx := cellLeft + cellW/2
		cy := cellTop + cellH/2

		dc.SetFont(letterFace)
		dc.SetColor(gg.Black.Color())
		dc.DrawStringAnchored(opt, cx, cy, 0.5, 0.5)

		g.maskText(dc, opt, cx, cy, cellH)

		// Border box around the option cell.
		dc.SetColor(borderColor.Color())
		dc.SetLineWidth(borderWidth)
		dc.DrawRectangle(cellLeft-boxPadding, cellTop-boxPadding,
			cellW+2*boxPadding, cellH+2*boxPadding)
		dc.Stroke()

		// Option number above the box.
		dc.SetFont(numberFace)
		dc.SetColor(gg.Black.Color())
		dc.DrawStringAnchored(fmt.Sprintf("%d", i+1), cx, cellTop-2.5*boxPadding, 0.5, 0.5)
	}
	return nil
}

// maskText occludes the glyphs at (cx, cy) with background-colored
// horizontal strips so only slices of each letter stay visible.
func (g *Generator) maskText(dc *gg.Context, s string, cx, cy, cellH float64) {
	textW, textH := dc.MeasureString(s)
	left := cx - textW/2 - maskOverhang
	top := cy - textH/2

	stripH := (cellH - 5) / (maskStrips * 2)
	dc.SetColor(gg.White.Color())
	for i := 0; i < maskStrips; i++ {
		y := top + float64(i)*stripH*2 + 10
		dc.DrawRectangle(left, y, textW+2*maskOverhang, stripH)
		dc.Fill()
	}
}
