package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var (
	playJournal bool
	playSeed    int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Open an interactive cube in the terminal.

Keys:
  f b u d l r    turn a face clockwise (shift for counter-clockwise)
  m e s          turn a slice (shift for counter-clockwise)
  x y            turn the whole cube (shift for counter-clockwise)
  space          scramble
  enter          solve by undoing each recorded move in turn
  z              undo every recorded move at once
  0              reset to solved
  q              quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playJournal, "journal", false, "Journal the session to the database (default from config)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Scramble seed (default: time based)")
	playCmd.Flags().BoolVar(&plainNet, "plain", false, "Draw the net as plain letters")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := []cubesim.Option{
		cubesim.WithLogger(logger),
		cubesim.WithScrambleLength(cfg.ScrambleLength),
		cubesim.WithRecordReorientations(cfg.RecordReorientations),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubesim.WithSeed(playSeed))
	}
	session := cubesim.NewSession(opts...)

	var journal *recorder.Journal
	if playJournal || cfg.Journal {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		journal = recorder.NewJournal(db, logger)
		if _, err := journal.Start("play", session.Seed()); err != nil {
			return err
		}
	}

	model := newPlayModel(session, journal, cfg.SolveDelay())
	model.plain = plainNet

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if journal != nil {
		if err := journal.End(session.Cube()); err != nil {
			return err
		}
		fmt.Printf("Session journaled: %s\n", journal.SessionID())
	}
	return nil
}

// keyMoves maps play keys to moves. Shifted letters turn counter-clockwise.
var keyMoves = map[string]cubesim.Move{
	"u": cubesim.MoveU, "U": cubesim.MoveUPrime,
	"d": cubesim.MoveD, "D": cubesim.MoveDPrime,
	"f": cubesim.MoveF, "F": cubesim.MoveFPrime,
	"b": cubesim.MoveB, "B": cubesim.MoveBPrime,
	"r": cubesim.MoveR, "R": cubesim.MoveRPrime,
	"l": cubesim.MoveL, "L": cubesim.MoveLPrime,
	"m": cubesim.MoveM, "M": cubesim.MoveMPrime,
	"e": cubesim.MoveE, "E": cubesim.MoveEPrime,
	"s": cubesim.MoveS, "S": cubesim.MoveSPrime,
	"x": cubesim.MoveX, "X": cubesim.MoveXPrime,
	"y": cubesim.MoveY, "Y": cubesim.MoveYPrime,
}

const recentMoves = 12

type undoTickMsg struct{}

type playModel struct {
	session *cubesim.Session
	journal *recorder.Journal // nil when not journaling
	delay   time.Duration

	solving  bool
	recent   []cubesim.Move
	status   string
	err      error
	quitting bool
	plain    bool
}

func newPlayModel(session *cubesim.Session, journal *recorder.Journal, delay time.Duration) *playModel {
	m := &playModel{
		session: session,
		journal: journal,
		delay:   delay,
		status:  "Ready",
	}
	session.OnSolved(func() {
		m.status = "Solved!"
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case undoTickMsg:
		return m, m.undoStep()
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	// The cube belongs to the solver until it finishes.
	if m.solving {
		return m, nil
	}

	if move, ok := keyMoves[key]; ok {
		m.status = "Moved " + move.Notation()
		m.session.Apply(move)
		m.pushRecent(move)
		m.journalMoves([]cubesim.Move{move}, storage.KindUser)
		return m, nil
	}

	switch key {
	case " ", "space":
		moves := m.session.Scramble()
		m.recent = nil
		m.status = fmt.Sprintf("Scrambled with %d turns", len(moves))
		m.journalMoves(moves, storage.KindScramble)

	case "enter", "backspace":
		if m.session.History().Len() == 0 {
			m.status = "Nothing to undo"
			return m, nil
		}
		m.solving = true
		m.status = "Solving..."
		return m, m.tick()

	case "z":
		inverses := m.session.History().Inverses()
		if len(inverses) == 0 {
			m.status = "Nothing to undo"
			return m, nil
		}
		undone := make([]cubesim.Move, len(inverses))
		for i, inv := range inverses {
			undone[len(inverses)-1-i] = inv
		}
		m.recent = nil
		m.status = fmt.Sprintf("Undid %d moves", len(undone))
		m.session.UndoAll()
		m.journalMoves(undone, storage.KindUndo)

	case "0":
		m.session.Reset()
		m.recent = nil
		m.status = "Reset"
		if m.journal != nil {
			m.setErr(m.journal.RecordReset())
		}
	}

	return m, nil
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return undoTickMsg{}
	})
}

// undoStep applies one inverse and schedules the next until history is empty.
func (m *playModel) undoStep() tea.Cmd {
	move, ok := m.session.UndoStep()
	if !ok {
		m.solving = false
		return nil
	}

	m.pushRecent(move)
	m.journalMoves([]cubesim.Move{move}, storage.KindUndo)

	if m.session.History().Len() == 0 {
		m.solving = false
		if !m.session.IsSolved() {
			m.status = "History empty"
		}
		return nil
	}
	return m.tick()
}

func (m *playModel) pushRecent(move cubesim.Move) {
	m.recent = append(m.recent, move)
	if len(m.recent) > recentMoves {
		m.recent = m.recent[len(m.recent)-recentMoves:]
	}
}

func (m *playModel) journalMoves(moves []cubesim.Move, kind storage.Kind) {
	if m.journal == nil {
		return
	}
	m.setErr(m.journal.RecordBatch(moves, kind))
}

func (m *playModel) setErr(err error) {
	if err != nil {
		m.err = err
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")

	if m.plain {
		b.WriteString(m.session.Cube().String())
	} else {
		b.WriteString(render.Net(m.session.Cube()))
	}
	b.WriteString("\n\n")

	status := m.status
	if m.session.IsSolved() {
		b.WriteString(solvedStyle.Render(status))
	} else {
		b.WriteString(statusStyle.Render(status))
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("   history: %d", m.session.History().Len())))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(moveStyle.Render(cubesim.FormatMoves(m.recent)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Journal error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("fbudlr mes xy: turn (shift: reverse) | space: scramble | enter: solve | z: undo all | 0: reset | q: quit"))
	b.WriteString("\n")

	return b.String()
}
