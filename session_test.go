package cubesim_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SeamusWaldron/cubesim"
)

type SessionSuite struct {
	suite.Suite
	session *cubesim.Session
	changes []cubesim.Cube
	solved  int
}

func (s *SessionSuite) SetupTest() {
	s.session = cubesim.NewSession(cubesim.WithSeed(42), cubesim.WithScrambleLength(30))
	s.changes = nil
	s.solved = 0
	s.session.OnChange(func(c cubesim.Cube) { s.changes = append(s.changes, c) })
	s.session.OnSolved(func() { s.solved++ })
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) TestStartsSolved() {
	require.True(s.T(), s.session.IsSolved())
	require.Equal(s.T(), 0, s.session.Moves())
	require.Equal(s.T(), 30, s.session.ScrambleLength())
	require.Equal(s.T(), int64(42), s.session.Seed())
}

func (s *SessionSuite) TestApplyRecordsAndNotifies() {
	c := s.session.Apply(cubesim.MoveR)

	require.False(s.T(), c.IsSolved())
	require.Equal(s.T(), 1, s.session.Moves())
	require.Len(s.T(), s.changes, 1)
	require.True(s.T(), s.changes[0].Equal(c), "callback receives the full new cube")
}

func (s *SessionSuite) TestUndoAllRestoresSolved() {
	_, err := s.session.ApplyNotation("R U R' U' M x F' y'")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, s.session.Moves())

	c := s.session.UndoAll()
	require.True(s.T(), c.IsSolved())
	require.Equal(s.T(), 0, s.session.Moves())
	require.Equal(s.T(), 1, s.solved, "OnSolved fires once on return to solved")
}

func (s *SessionSuite) TestUndoAllEmptyIsNoOp() {
	s.session.UndoAll()
	require.Empty(s.T(), s.changes)
	require.Equal(s.T(), 0, s.solved)
}

func (s *SessionSuite) TestUndoStepWalksBack() {
	_, err := s.session.ApplyNotation("F U")
	require.NoError(s.T(), err)

	m, ok := s.session.UndoStep()
	require.True(s.T(), ok)
	require.Equal(s.T(), cubesim.MoveUPrime, m)

	m, ok = s.session.UndoStep()
	require.True(s.T(), ok)
	require.Equal(s.T(), cubesim.MoveFPrime, m)
	require.True(s.T(), s.session.IsSolved())

	_, ok = s.session.UndoStep()
	require.False(s.T(), ok)
}

func (s *SessionSuite) TestScrambleIsNotRecorded() {
	moves := s.session.Scramble()
	require.Len(s.T(), moves, 30)
	require.Equal(s.T(), 0, s.session.Moves())

	scrambled := s.session.Cube()
	s.session.UndoAll()
	require.True(s.T(), s.session.Cube().Equal(scrambled), "undo cannot see the scramble")

	s.session.Apply(cubesim.MoveL)
	s.session.UndoAll()
	require.True(s.T(), s.session.Cube().Equal(scrambled), "undo returns to the scrambled state")
}

func (s *SessionSuite) TestResetClearsEverything() {
	s.session.Scramble()
	s.session.Apply(cubesim.MoveD)

	c := s.session.Reset()
	require.True(s.T(), c.IsSolved())
	require.Equal(s.T(), 0, s.session.Moves())
}

func (s *SessionSuite) TestInvalidNotationAppliesNothing() {
	_, err := s.session.ApplyNotation("R Q U")
	require.ErrorIs(s.T(), err, cubesim.ErrInvalidNotation)
	require.True(s.T(), s.session.IsSolved())
	require.Empty(s.T(), s.changes)
}

func (s *SessionSuite) TestLoadReplacesCube() {
	s.session.Apply(cubesim.MoveR)
	target := cubesim.Apply(cubesim.NewCube(), cubesim.MoveB)

	s.session.Load(target)
	require.True(s.T(), s.session.Cube().Equal(target))
	require.Equal(s.T(), 0, s.session.Moves())
}

func TestSessionWithoutReorientationRecording(t *testing.T) {
	session := cubesim.NewSession(cubesim.WithRecordReorientations(false))
	session.Apply(cubesim.MoveX)
	session.Apply(cubesim.MoveR)

	assert.Equal(t, 1, session.Moves())

	c := session.UndoAll()
	assert.True(t, c.IsUniform(), "only the face turn is undone")
	assert.False(t, c.IsSolved(), "the x rotation stays")
	assert.True(t, c.Equal(cubesim.Apply(cubesim.NewCube(), cubesim.MoveX)))
}

func TestSessionSameSeedSameScramble(t *testing.T) {
	a := cubesim.NewSession(cubesim.WithSeed(7))
	b := cubesim.NewSession(cubesim.WithSeed(7))
	a.Scramble()
	b.Scramble()
	assert.True(t, a.Cube().Equal(b.Cube()))
	assert.Equal(t, cubesim.DefaultScrambleLength, a.ScrambleLength())
}

func TestSessionLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	session := cubesim.NewSession(cubesim.WithLogger(logger))
	session.Apply(cubesim.MoveF)

	assert.Contains(t, buf.String(), "move applied")
	assert.Contains(t, buf.String(), "move=F")
}
