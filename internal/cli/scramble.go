package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a solved cube with random face turns",
	Long: `Apply random clockwise face turns to a solved cube and print the turns,
the resulting state and the net. The same --seed always gives the same scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of turns (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (default: time based)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Journal the scramble to the database")
	scrambleCmd.Flags().BoolVar(&plainNet, "plain", false, "Print the net as plain letters")
}

func runScramble(cmd *cobra.Command, args []string) error {
	opts := []cubesim.Option{
		cubesim.WithLogger(logger),
		cubesim.WithScrambleLength(cfg.ScrambleLength),
	}
	if scrambleLength > 0 {
		opts = append(opts, cubesim.WithScrambleLength(scrambleLength))
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubesim.WithSeed(scrambleSeed))
	}

	session := cubesim.NewSession(opts...)
	moves := session.Scramble()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:     %d\n", session.Seed())
	fmt.Fprintf(out, "Scramble: %s\n", cubesim.CompactMoves(moves))
	fmt.Fprintf(out, "Turns:    %d\n\n", len(moves))
	printCube(out, session.Cube())

	if scrambleSave {
		id, err := saveSession("scramble", session.Seed(), session.Cube(), func(j *recorder.Journal) error {
			return j.RecordBatch(moves, storage.KindScramble)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved session: %s\n", id)
	}

	return nil
}
