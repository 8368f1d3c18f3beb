// Package scramble renders word-scramble counting puzzles: one goal word
// is drawn several times, some spellings correct and some scrambled, at
// random sizes and right-angle rotations scattered over the canvas. The
// solver counts the correctly spelled copies; the answer is encoded in
// the output filename.
package scramble
