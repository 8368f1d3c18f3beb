package cluematrix

import "math/rand/v2"

const (
	// gridCells is the number of cells (and numbers) in the puzzle.
	gridCells = 9
	// starCount is how many numbers get star treatment.
	starCount = 3
	// extraCrosses pads sparse clues so no tile gives the answer away
	// by being nearly empty.
	extraCrosses = 2
	// minCrosses is the threshold below which a clue gets padded.
	minCrosses = 3
)

// Cell is one cell of a clue tile.
type Cell uint8

const (
	Blank Cell = iota
	Cross
	Star
)

// Clue is a 3x3 tile in row-major order.
type Clue [gridCells]Cell

// crosses counts the crossed cells.
func (c Clue) crosses() int {
	n := 0
	for _, cell := range c {
		if cell == Cross {
			n++
		}
	}
	return n
}

// hasStar reports whether the clue is a star glyph tile.
func (c Clue) hasStar() bool {
	for _, cell := range c {
		if cell == Star {
			return true
		}
	}
	return false
}

// Puzzle is a complete clue set with its hidden answer.
type Puzzle struct {
	// Answer holds the 1-based number at each grid position, row-major.
	Answer [gridCells]int
	// Clues[n-1] is the clue tile for number n.
	Clues [gridCells]Clue
}

// Generate builds a random puzzle.
//
// Three numbers are stars: their clues either cross out all eight other
// cells or (on a coin flip) collapse to a single star glyph on their own
// cell. The remaining numbers are revealed one by one in grid order;
// each clue crosses the cells that are neither its own nor already
// revealed, padded with extra crosses on revealed cells when it would
// otherwise be too sparse.
func Generate(rng *rand.Rand) Puzzle {
	// values[pos] is the 0-based number at that position.
	var values [gridCells]int
	copy(values[:], rng.Perm(gridCells))

	posOf := make([]int, gridCells)
	for pos, v := range values {
		posOf[v] = pos
	}

	var p Puzzle
	for pos, v := range values {
		p.Answer[pos] = v + 1
	}

	isStar := make([]bool, gridCells)
	for _, v := range rng.Perm(gridCells)[:starCount] {
		isStar[v] = true
		p.Clues[v] = buildClue(rng, posOf[v], gridCells-1, nil)
	}

	// Star positions are known before any other clue is read.
	revealed := make([]int, 0, gridCells)
	for v := 0; v < gridCells; v++ {
		if isStar[v] {
			revealed = append(revealed, posOf[v])
		}
	}

	needed := gridCells - starCount
	for _, v := range values {
		if isStar[v] {
			continue
		}
		needed--
		p.Clues[v] = buildClue(rng, posOf[v], needed, revealed)
		revealed = append(revealed, posOf[v])
	}
	return p
}

// buildClue creates the tile for a number at pos. crossBudget is how
// many cells remain unrevealed besides the number's own; revealed lists
// positions earlier clues have pinned down.
func buildClue(rng *rand.Rand, pos, crossBudget int, revealed []int) Clue {
	var c Clue
	if crossBudget == gridCells-1 && rng.IntN(2) == 0 {
		c[pos] = Star
		return c
	}

	skip := make(map[int]bool, len(revealed))
	for _, r := range revealed {
		skip[r] = true
	}
	for cell := 0; cell < gridCells; cell++ {
		if cell != pos && !skip[cell] {
			c[cell] = Cross
		}
	}

	if c.crosses() < minCrosses && len(revealed) >= extraCrosses {
		for _, i := range rng.Perm(len(revealed))[:extraCrosses] {
			c[revealed[i]] = Cross
		}
	}
	return c
}
