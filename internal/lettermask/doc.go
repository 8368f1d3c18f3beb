// Package lettermask renders letter-matching puzzles: a short string of
// uppercase letters at the top and a row of numbered options below, each
// partially occluded by horizontal strips. Exactly one option matches
// the question string; distractors swap a single letter for a visually
// similar one. The matching option's number is encoded in the output
// filename.
package lettermask
