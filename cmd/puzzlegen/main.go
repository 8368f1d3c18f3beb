// Command puzzlegen renders puzzle images: word-scramble counting
// puzzles, masked letter-matching puzzles, Stroop color-counting
// puzzles, and 3x3 clue-matrix puzzles. Each subcommand writes PNG
// files whose names encode the puzzle answer.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"puzzlegen/internal/config"
)

var (
	flagOut     string
	flagSeed    uint64
	flagConfig  string
	flagVerbose bool

	logger *zap.Logger
	cfg    *config.File
)

var rootCmd = &cobra.Command{
	Use:   "puzzlegen",
	Short: "Render puzzle images to PNG files",
	Long: `puzzlegen renders randomized puzzle images. Every puzzle's answer is
encoded in its output filename, so a batch of images doubles as a
labeled data set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if flagVerbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return err
		}

		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagConfig != "" {
			logger.Debug("loaded config overrides", zap.String("path", flagConfig))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagOut, "out", "o", "output", "output directory")
	pf.Uint64Var(&flagSeed, "seed", 0, "random seed (0 picks one at random)")
	pf.StringVar(&flagConfig, "config", "", "YAML file overriding word lists, presets, and palette")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(wordsCmd, lettersCmd, colorsCmd, matrixCmd)
}

// newRNG returns a generator for one image. A fixed --seed makes runs
// reproducible; the stream index keeps concurrent images distinct.
func newRNG(stream uint64) *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, stream))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
