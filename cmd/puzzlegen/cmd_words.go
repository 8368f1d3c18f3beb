package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"puzzlegen/internal/scramble"
)

var (
	wordsDifficulty string
	wordsWord       string
	wordsRatio      float64
	wordsCount      int
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Render word-scramble counting puzzles",
	Long: `words scatters copies of one goal word over the canvas, some spelled
correctly and some scrambled, at random sizes and right-angle
rotations. The filename <word>_<n>.png records that n copies are
spelled correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gcfg := cfg.ScrambleConfig()
		req := scramble.Request{
			Difficulty:   scramble.Difficulty(wordsDifficulty),
			Word:         wordsWord,
			CorrectRatio: wordsRatio,
		}

		grp := new(errgroup.Group)
		grp.SetLimit(runtime.NumCPU())
		for i := 0; i < wordsCount; i++ {
			grp.Go(func() error {
				g, err := scramble.New(gcfg, newRNG(uint64(i)), logger)
				if err != nil {
					return err
				}
				_, err = g.Generate(req, flagOut)
				return err
			})
		}
		return grp.Wait()
	},
}

func init() {
	f := wordsCmd.Flags()
	f.StringVar(&wordsDifficulty, "difficulty", "easy", "easy, medium, or hard")
	f.StringVar(&wordsWord, "word", "", "goal word (length must match the difficulty)")
	f.Float64Var(&wordsRatio, "correct-ratio", -1, "fraction of correct copies (negative picks 0.2-0.6 at random)")
	f.IntVar(&wordsCount, "count", 1, "number of images to generate")
}
