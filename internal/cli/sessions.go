package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage journaled sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions found.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-8s  %5s  %s\n", "SESSION", "STARTED", "SOURCE", "MOVES", "SOLVED")
		for _, s := range sessions {
			fmt.Fprintf(out, "%-36s  %-19s  %-8s  %5d  %s\n",
				s.SessionID,
				s.StartedAt.Local().Format("2006-01-02 15:04:05"),
				s.Source,
				s.MoveCount,
				solvedLabel(s),
			)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		s, err := storage.NewSessionRepository(db).Get(args[0])
		if err != nil {
			return err
		}
		records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Session: %s\n", s.SessionID)
		fmt.Fprintf(out, "Source:  %s\n", s.Source)
		fmt.Fprintf(out, "Started: %s\n", s.StartedAt.Local().Format(time.RFC3339))
		if s.EndedAt != nil {
			fmt.Fprintf(out, "Ended:   %s (%s)\n", s.EndedAt.Local().Format(time.RFC3339), s.EndedAt.Sub(s.StartedAt).Round(time.Millisecond))
		}
		if s.Seed != nil {
			fmt.Fprintf(out, "Seed:    %d\n", *s.Seed)
		}
		fmt.Fprintf(out, "Moves:   %d\n\n", len(records))

		var current storage.Kind
		var line []string
		flush := func() {
			if len(line) > 0 {
				fmt.Fprintf(out, "  %-8s %s\n", current, strings.Join(line, " "))
			}
			line = nil
		}
		for _, r := range records {
			if r.Kind != current {
				flush()
				current = r.Kind
			}
			if r.Kind != storage.KindReset {
				line = append(line, r.Notation)
			} else {
				line = append(line, "-")
			}
		}
		flush()

		final, err := recorder.Rebuild(records)
		if err != nil {
			return err
		}
		if s.FinalState != nil && *s.FinalState != final.Encode() {
			logger.WithField("session", s.SessionID).Warn("stored final state differs from replayed moves")
		}

		fmt.Fprintln(out)
		printCube(out, final)
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewSessionRepository(db).Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)

	sessionsListCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum number of sessions to list")
	sessionsShowCmd.Flags().BoolVar(&plainNet, "plain", false, "Print the net as plain letters")
}

func solvedLabel(s storage.Session) string {
	if s.FinalState == nil {
		return "-"
	}
	c, err := cubesim.ParseState(*s.FinalState)
	if err != nil {
		return "?"
	}
	if c.IsSolved() {
		return "yes"
	}
	return "no"
}
