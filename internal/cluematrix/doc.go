// Package cluematrix renders the 3x3 clue/answer grid puzzle. The
// hidden answer is a permutation of 1..9 laid out on a 3x3 grid. Each
// number gets a clue tile: crosses mark cells the number cannot occupy,
// a star glyph marks a cell directly. Nine tiles are composed into one
// sheet; the solver deduces the permutation tile by tile.
package cluematrix
