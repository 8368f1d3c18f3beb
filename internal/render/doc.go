// Package render provides the shared canvas plumbing for the puzzle
// generators: context creation over gg, embedded TrueType fonts, and a
// PNG sink that creates output directories on demand.
//
// Fonts are the Go fonts (golang.org/x/image/font/gofont) compiled into
// the binary, so generated puzzles look the same on every machine and no
// system font probing is needed. Font sources are parsed once; faces are
// cached per weight and size because the word puzzles request many sizes.
package render
