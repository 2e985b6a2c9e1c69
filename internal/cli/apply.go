package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	applyState string
	applySave  bool
	plainNet   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a cube and print the result",
	Long: `Apply a move sequence to a solved cube (or to --state) and print the net.

Notation:
  U D F B R L   face turns        M E S   slice turns
  x y           whole cube turns  '       counter-clockwise
  2             two quarter turns

Examples:
  cubesim apply "R U R' U'"
  cubesim apply M2 E2 S2
  cubesim apply --state WWGWWGWWG... "R'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "Start from an encoded 54-letter state instead of solved")
	applyCmd.Flags().BoolVar(&applySave, "save", false, "Journal the moves to the database")
	applyCmd.PersistentFlags().BoolVar(&plainNet, "plain", false, "Print the net as plain letters")
}

func runApply(cmd *cobra.Command, args []string) error {
	if applySave && applyState != "" {
		return errors.New("--save replays from a solved cube and cannot be combined with --state")
	}

	session := cubesim.NewSession(
		cubesim.WithLogger(logger),
		cubesim.WithRecordReorientations(cfg.RecordReorientations),
	)

	if applyState != "" {
		start, err := cubesim.ParseState(applyState)
		if err != nil {
			return err
		}
		session.Load(start)
	}

	moves, err := session.ApplyNotation(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s (%d quarter turns)\n\n", cubesim.FormatMoves(moves), len(moves))
	printCube(out, session.Cube())

	if applySave {
		id, err := saveSession("apply", session.Seed(), session.Cube(), func(j *recorder.Journal) error {
			return j.RecordBatch(moves, storage.KindUser)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved session: %s\n", id)
	}

	return nil
}

// printCube prints the net, encoded state and solved flag.
func printCube(out io.Writer, c cubesim.Cube) {
	if plainNet {
		fmt.Fprint(out, c.String())
	} else {
		fmt.Fprintln(out, render.Net(c))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "State:  %s\n", c.Encode())
	fmt.Fprintf(out, "Solved: %v\n", c.IsSolved())
}

// saveSession journals a finished one-shot session.
func saveSession(source string, seed int64, final cubesim.Cube, write func(*recorder.Journal) error) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	j := recorder.NewJournal(db, logger)
	id, err := j.Start(source, seed)
	if err != nil {
		return "", err
	}
	if err := write(j); err != nil {
		return "", err
	}
	if err := j.End(final); err != nil {
		return "", err
	}
	return id, nil
}
