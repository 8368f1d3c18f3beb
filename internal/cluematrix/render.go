package cluematrix

import (
	"strconv"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"puzzlegen/internal/render"
)

const (
	cellSize   = 100
	gridLine   = 4
	gridSize   = cellSize*3 + 3
	tileMargin = 20
	tileSize   = gridSize + tileMargin*4

	digitSize = 30
	labelSize = 60

	// OutputName is the fixed filename of the rendered sheet.
	OutputName = "clues.png"
)

var (
	starColor  = gg.RGB(0, 0, 1)
	crossColor = gg.RGB(1, 0, 0)
)

// starOutline traces the shooting-star glyph inside one cell, relative
// to the cell's top-left corner.
var starOutline = [][2]float64{
	{cellSize / 2, 10},
	{cellSize/2 + 10, cellSize/2 - 10},
	{cellSize - 10, cellSize/2 - 10},
	{cellSize/2 + 20, cellSize/2 + 10},
	{cellSize/2 + 30, cellSize - 10},
	{cellSize / 2, cellSize/2 + 20},
	{cellSize/2 - 30, cellSize - 10},
	{cellSize/2 - 20, cellSize/2 + 10},
	{10, cellSize/2 - 10},
	{cellSize/2 - 10, cellSize/2 - 10},
}

// Renderer draws puzzles onto a sheet of nine clue tiles.
type Renderer struct {
	log *zap.Logger
}

// NewRenderer builds a Renderer. A nil logger disables logging.
func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log}
}

// Render writes the puzzle's clue sheet to dir/clues.png and returns
// the full path. The answer is logged, never drawn.
func (r *Renderer) Render(p Puzzle, dir string) (string, error) {
	dc := render.NewCanvas(tileSize*3, tileSize*3, gg.White)

	for n := 0; n < gridCells; n++ {
		dc.Push()
		dc.Translate(float64(n%3)*tileSize, float64(n/3)*tileSize)
		if err := r.drawTile(dc, p.Clues[n], n+1); err != nil {
			dc.Pop()
			return "", err
		}
		dc.Pop()
	}

	path, err := render.SavePNG(dc, dir, OutputName)
	if err != nil {
		return "", err
	}

	r.log.Info("generated clue matrix",
		zap.Ints("answer", p.Answer[:]),
		zap.String("path", path))
	return path, nil
}

// RenderAnswer writes the solved grid to dir/answer.png: a single tile
// with the permutation's digits in place of clue marks.
func (r *Renderer) RenderAnswer(p Puzzle, dir string) (string, error) {
	dc := render.NewCanvas(tileSize, tileSize, gg.White)

	digitFace, err := render.Face(render.Regular, digitSize)
	if err != nil {
		return "", err
	}

	dc.Push()
	dc.Translate(tileMargin*3, tileMargin)
	r.drawGrid(dc)
	dc.SetFont(digitFace)
	dc.SetColor(gg.Black.Color())
	for cell, n := range p.Answer {
		x := float64(cell%3) * cellSize
		y := float64(cell/3) * cellSize
		dc.DrawStringAnchored(strconv.Itoa(n), x+cellSize/2, y+cellSize/2, 0.5, 0.5)
	}
	dc.Pop()

	return render.SavePNG(dc, dir, "answer.png")
}

// drawTile draws one clue tile at the context origin: the 3x3 grid with
// its marks, and the tile's number in the top-left corner.
func (r *Renderer) drawTile(dc *gg.Context, clue Clue, number int) error {
	labelFace, err := render.Face(render.Regular, labelSize)
	if err != nil {
		return err
	}

	// Tile label in the blank strip left of the grid.
	dc.SetFont(labelFace)
	dc.SetColor(gg.Black.Color())
	dc.DrawStringAnchored(strconv.Itoa(number), tileMargin+5, tileMargin*2, 0.5, 0.5)

	dc.Push()
	defer dc.Pop()
	dc.Translate(tileMargin*3, tileMargin)

	r.drawGrid(dc)

	for cell, mark := range clue {
		x := float64(cell%3) * cellSize
		y := float64(cell/3) * cellSize
		switch mark {
		case Star:
			r.drawStar(dc, x, y)
		case Cross:
			r.drawCross(dc, x, y)
		}
	}
	return nil
}

// drawGrid draws the 3x3 grid lines, including the outer border.
func (r *Renderer) drawGrid(dc *gg.Context) {
	dc.SetColor(gg.Black.Color())
	dc.SetLineWidth(gridLine)
	for i := 0; i <= 3; i++ {
		offset := float64(i * cellSize)
		dc.DrawLine(0, offset, gridSize, offset)
		dc.Stroke()
		dc.DrawLine(offset, 0, offset, gridSize)
		dc.Stroke()
	}
}

func (r *Renderer) drawStar(dc *gg.Context, x, y float64) {
	dc.SetColor(starColor.Color())
	for i, pt := range starOutline {
		if i == 0 {
			dc.MoveTo(x+pt[0], y+pt[1])
			continue
		}
		dc.LineTo(x+pt[0], y+pt[1])
	}
	dc.ClosePath()
	dc.Fill()
}

func (r *Renderer) drawCross(dc *gg.Context, x, y float64) {
	arm := float64(cellSize) / 4
	cx, cy := x+cellSize/2, y+cellSize/2

	dc.SetColor(crossColor.Color())
	dc.SetLineWidth(gridLine)
	dc.DrawLine(cx-arm, cy-arm, cx+arm, cy+arm)
	dc.Stroke()
	dc.DrawLine(cx+arm, cy-arm, cx-arm, cy+arm)
	dc.Stroke()
}
