// Package colorwords renders Stroop-style color-counting puzzles: each
// row spells a color name drawn in a different ink color. The solver
// counts how many distinct colors the image involves, named or shown;
// that count is encoded in the output filename together with a short
// random identifier.
package colorwords
