package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"puzzlegen/internal/colorwords"
)

var (
	colorsWords int
	colorsCount int
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Render Stroop color-counting puzzles",
	Long: `colors spells color names in mismatched ink colors. The filename
<n>_<id>.png records that n distinct colors appear, counting both the
names spelled out and the inks used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		palette, err := cfg.Palette()
		if err != nil {
			return err
		}

		grp := new(errgroup.Group)
		grp.SetLimit(runtime.NumCPU())
		for i := 0; i < colorsCount; i++ {
			grp.Go(func() error {
				g, err := colorwords.New(palette, newRNG(uint64(i)), logger)
				if err != nil {
					return err
				}
				_, err = g.Generate(colorsWords, flagOut)
				return err
			})
		}
		return grp.Wait()
	},
}

func init() {
	f := colorsCmd.Flags()
	f.IntVar(&colorsWords, "words", 5, "color words per image (1-5)")
	f.IntVar(&colorsCount, "count", 1, "number of images to generate")
}
