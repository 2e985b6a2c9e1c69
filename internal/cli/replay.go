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

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a journaled session",
	Long: `Replay a journaled session move by move, starting from a solved cube.

If no session is given, the most recent session is replayed.

Usage:
  cubesim replay                  # Replay the last session
  cubesim replay <session-id>     # Replay a specific session
  cubesim replay --speed 2.0      # Replay at 2x speed
  cubesim replay --step           # Step through moves manually`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	var session *storage.Session
	if len(args) > 0 {
		session, err = sessions.Get(args[0])
	} else {
		session, err = sessions.GetLast()
	}
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	steps, err := recorder.Steps(records)
	if err != nil {
		return fmt.Errorf("session %s: %w", session.SessionID, err)
	}

	model := newReplayModel(session.SessionID, steps, cfg.SolveDelay(), replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

type replayTickMsg struct{}

type replayModel struct {
	sessionID string
	steps     []recorder.Step
	index     int
	cube      cubesim.Cube
	interval  time.Duration
	speed     float64
	stepMode  bool
	paused    bool
	quitting  bool
}

func newReplayModel(sessionID string, steps []recorder.Step, interval time.Duration, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		sessionID: sessionID,
		steps:     steps,
		cube:      cubesim.NewCube(),
		interval:  interval,
		speed:     speed,
		stepMode:  stepMode,
		paused:    stepMode, // Start paused in step mode
	}
}

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.done() {
		return nil
	}
	delay := time.Duration(float64(m.interval) / m.speed)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayTickMsg{}
	})
}

func (m *replayModel) done() bool {
	return m.index >= len(m.steps)
}

func (m *replayModel) advance() {
	if m.done() {
		return
	}
	m.cube = m.steps[m.index].Apply(m.cube)
	m.index++
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n":
			if m.paused {
				m.advance()
			}

		case " ", "p":
			if m.stepMode {
				m.advance()
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "r":
			finished := m.done()
			m.index = 0
			m.cube = cubesim.NewCube()
			// A finished auto-play has no tick pending.
			if finished && !m.stepMode && !m.paused {
				return m, m.scheduleNext()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.paused {
			m.advance()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim replay"))
	b.WriteString(statusStyle.Render("  " + m.sessionID))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.steps))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	b.WriteString(render.Net(m.cube))
	b.WriteString("\n\n")

	if m.index > 0 {
		last := m.steps[m.index-1]
		label := "reset"
		if !last.Reset {
			label = last.Move.Notation()
		}
		b.WriteString(fmt.Sprintf("Last: %s (%s)\n", moveStyle.Render(label), last.Record.Kind))
	}
	if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/p=pause  n=next  r=restart  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE=next move  r=restart  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
