package main

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"puzzlegen/internal/lettermask"
)

var (
	lettersDifficulty string
	lettersCount      int
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Render masked letter-matching puzzles",
	Long: `letters shows a short string of capital letters and several numbered
options whose glyphs are partially occluded by horizontal strips;
exactly one option matches. Files land in per-difficulty
subdirectories, named <letters>_<answer>.png. By default every
difficulty is rendered; --difficulty picks a single tier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulties := lettermask.Difficulties
		if lettersDifficulty != "" {
			d := lettermask.Difficulty(lettersDifficulty)
			if _, err := lettermask.TierFor(d); err != nil {
				return err
			}
			difficulties = []lettermask.Difficulty{d}
		}

		grp := new(errgroup.Group)
		grp.SetLimit(runtime.NumCPU())
		stream := uint64(0)
		for _, d := range difficulties {
			for i := 0; i < lettersCount; i++ {
				stream++
				s := stream
				grp.Go(func() error {
					g := lettermask.New(newRNG(s), logger)
					_, err := g.Generate(d, filepath.Join(flagOut, string(d)))
					return err
				})
			}
		}
		return grp.Wait()
	},
}

func init() {
	f := lettersCmd.Flags()
	f.StringVar(&lettersDifficulty, "difficulty", "", "easy, medium, or hard (default: all three)")
	f.IntVar(&lettersCount, "count", 1, "number of images per difficulty")
}
