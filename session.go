package cubesim

import (
	"github.com/sirupsen/logrus"
)

// Session owns the current cube for a front end. It records user moves so
// they can be undone, scrambles without recording, and reports every new
// state through the OnChange callback.
//
// Session is not safe for concurrent use; drive it from one event loop.
type Session struct {
	cube      Cube
	history   *History
	scrambler *Scrambler
	cfg       *config
	log       logrus.FieldLogger

	onChange func(c Cube)
	onSolved func()
}

// NewSession creates a session holding a solved cube.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	scrambler := NewScrambler(cfg.seed)
	if cfg.rng != nil {
		scrambler = &Scrambler{rng: cfg.rng, seed: cfg.seed}
	}

	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}

	return &Session{
		cube:      NewCube(),
		history:   NewHistory(),
		scrambler: scrambler,
		cfg:       cfg,
		log:       log,
	}
}

// OnChange sets a callback that receives the full cube after every
// mutating call.
func (s *Session) OnChange(cb func(c Cube)) {
	s.onChange = cb
}

// OnSolved sets a callback that fires when a move or undo brings the cube
// from an unsolved state back to solved.
func (s *Session) OnSolved(cb func()) {
	s.onSolved = cb
}

// Cube returns the current cube.
func (s *Session) Cube() Cube {
	return s.cube
}

// History returns the session's undo history.
func (s *Session) History() *History {
	return s.history
}

// Moves returns the number of recorded moves waiting to be undone.
func (s *Session) Moves() int {
	return s.history.Len()
}

// Seed returns the scramble seed.
func (s *Session) Seed() int64 {
	return s.scrambler.Seed()
}

// ScrambleLength returns the number of turns Scramble applies.
func (s *Session) ScrambleLength() int {
	return s.cfg.scrambleLength
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Apply applies a user move and records its inverse. Whole-cube turns are
// recorded unless disabled with WithRecordReorientations(false).
func (s *Session) Apply(m Move) Cube {
	if !m.Token.Valid() {
		s.log.WithField("token", int(m.Token)).Debug("ignoring unknown move token")
		return s.cube
	}

	wasSolved := s.cube.IsSolved()
	s.cube = Apply(s.cube, m)

	recorded := !m.Token.IsReorientation() || s.cfg.recordReorientations
	if recorded {
		s.history.Record(m)
	}

	s.log.WithFields(logrus.Fields{
		"move":     m.Notation(),
		"recorded": recorded,
		"history":  s.history.Len(),
	}).Debug("move applied")

	s.changed(wasSolved)
	return s.cube
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
// Nothing is applied if the sequence does not parse.
func (s *Session) ApplyNotation(notation string) ([]Move, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		s.Apply(m)
	}
	return moves, nil
}

// Scramble applies the configured number of random face turns without
// recording them, and returns the turns used.
func (s *Session) Scramble() []Move {
	next, moves := s.scrambler.Scramble(s.cube, s.cfg.scrambleLength)
	s.cube = next

	s.log.WithFields(logrus.Fields{
		"turns": len(moves),
		"seed":  s.scrambler.Seed(),
	}).Debug("cube scrambled")

	s.notify()
	return moves
}

// Reset restores the solved cube and clears the history.
func (s *Session) Reset() Cube {
	s.cube = NewCube()
	s.history.Reset()
	s.log.Debug("cube reset")
	s.notify()
	return s.cube
}

// Load replaces the current cube and clears the history.
func (s *Session) Load(c Cube) {
	s.cube = c
	s.history.Reset()
	s.notify()
}

// UndoAll undoes every recorded move, most recent first, and clears the
// history. It does nothing if the history is empty.
func (s *Session) UndoAll() Cube {
	if s.history.Len() == 0 {
		return s.cube
	}

	wasSolved := s.cube.IsSolved()
	undone := s.history.Len()
	s.cube = s.history.UndoAll(s.cube)

	s.log.WithField("undone", undone).Debug("history replayed")
	s.changed(wasSolved)
	return s.cube
}

// UndoStep undoes the most recent recorded move. It returns the move
// applied and false once the history is empty.
func (s *Session) UndoStep() (Move, bool) {
	inverse, ok := s.history.Pop()
	if !ok {
		return Move{}, false
	}

	wasSolved := s.cube.IsSolved()
	s.cube = Apply(s.cube, inverse)

	s.log.WithFields(logrus.Fields{
		"move":      inverse.Notation(),
		"remaining": s.history.Len(),
	}).Debug("undo step")

	s.changed(wasSolved)
	return inverse, true
}

// changed notifies listeners and fires OnSolved on an unsolved to solved
// transition.
func (s *Session) changed(wasSolved bool) {
	s.notify()
	if !wasSolved && s.cube.IsSolved() && s.onSolved != nil {
		s.onSolved()
	}
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.cube)
	}
}
