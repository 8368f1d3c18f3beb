package main

import (
	"github.com/spf13/cobra"

	"puzzlegen/internal/cluematrix"
)

var matrixAnswer bool

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Render a 3x3 clue-matrix puzzle",
	Long: `matrix hides a permutation of 1-9 on a 3x3 grid and renders nine clue
tiles (crosses and stars) into a single clues.png sheet. The
permutation is logged; --answer also renders it to answer.png.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := cluematrix.Generate(newRNG(0))
		r := cluematrix.NewRenderer(logger)

		if _, err := r.Render(p, flagOut); err != nil {
			return err
		}
		if matrixAnswer {
			if _, err := r.RenderAnswer(p, flagOut); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	matrixCmd.Flags().BoolVar(&matrixAnswer, "answer", false, "also render the solved grid to answer.png")
}
