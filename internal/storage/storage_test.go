package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// StorageSuite runs each test against a fresh database file.
type StorageSuite struct {
	suite.Suite
	db       *storage.DB
	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
}

func (s *StorageSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "cubesim.db")
	db, err := storage.Open(path)
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.MigrateUp())

	s.db = db
	s.sessions = storage.NewSessionRepository(db)
	s.moves = storage.NewMoveRepository(db)
}

func (s *StorageSuite) TearDownTest() {
	s.db.Close()
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) TestMigrationsAreIdempotent() {
	v, err := s.db.CurrentVersion()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, v)

	require.NoError(s.T(), s.db.MigrateUp())
	v, err = s.db.CurrentVersion()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, v)
}

func (s *StorageSuite) TestSessionLifecycle() {
	id, err := s.sessions.Create("play", 42)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), id)

	got, err := s.sessions.Get(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "play", got.Source)
	require.NotNil(s.T(), got.Seed)
	require.Equal(s.T(), int64(42), *got.Seed)
	require.Nil(s.T(), got.EndedAt)

	now := time.Now()
	require.NoError(s.T(), s.moves.CreateBatch(id, []string{"R", "U", "R'"}, storage.KindUser, 0, now))

	require.NoError(s.T(), s.sessions.End(id, "STATE"))
	got, err = s.sessions.Get(id)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got.EndedAt)
	require.NotNil(s.T(), got.FinalState)
	require.Equal(s.T(), "STATE", *got.FinalState)
	require.Equal(s.T(), 3, got.MoveCount)
}

func (s *StorageSuite) TestMovesInOrder() {
	id, err := s.sessions.Create("apply", 1)
	require.NoError(s.T(), err)

	now := time.Now()
	_, err = s.moves.Create(id, 0, now, "F", storage.KindScramble)
	require.NoError(s.T(), err)

	next, err := s.moves.GetNextIndex(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, next)

	require.NoError(s.T(), s.moves.CreateBatch(id, []string{"M", "x'"}, storage.KindUser, next, now))
	_, err = s.moves.Create(id, 3, now, "", storage.KindReset)
	require.NoError(s.T(), err)

	records, err := s.moves.GetBySession(id)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 4)
	require.Equal(s.T(), "F", records[0].Notation)
	require.Equal(s.T(), storage.KindScramble, records[0].Kind)
	require.Equal(s.T(), "x'", records[2].Notation)
	require.Equal(s.T(), storage.KindReset, records[3].Kind)

	n, err := s.moves.CountBySession(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, n)
}

func (s *StorageSuite) TestDuplicateIndexRollsBackBatch() {
	id, err := s.sessions.Create("play", 1)
	require.NoError(s.T(), err)

	err = s.moves.CreateBatch(id, []string{"R", "U"}, storage.KindUser, 0, time.Now())
	require.NoError(s.T(), err)

	err = s.moves.CreateBatch(id, []string{"D", "F"}, storage.KindUser, 1, time.Now())
	require.Error(s.T(), err)

	n, err := s.moves.CountBySession(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, n, "failed batch leaves no rows behind")
}

func (s *StorageSuite) TestListNewestFirstAndDelete() {
	first, err := s.sessions.Create("play", 1)
	require.NoError(s.T(), err)
	second, err := s.sessions.Create("play", 2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.moves.CreateBatch(second, []string{"U"}, storage.KindUser, 0, time.Now()))

	list, err := s.sessions.List(10)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 2)
	require.Equal(s.T(), second, list[0].SessionID)
	require.Equal(s.T(), first, list[1].SessionID)

	last, err := s.sessions.GetLast()
	require.NoError(s.T(), err)
	require.Equal(s.T(), second, last.SessionID)

	require.NoError(s.T(), s.sessions.Delete(second))
	_, err = s.sessions.Get(second)
	require.ErrorIs(s.T(), err, storage.ErrSessionNotFound)

	n, err := s.moves.CountBySession(second)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, n, "moves cascade with their session")
}

func (s *StorageSuite) TestMissingSession() {
	_, err := s.sessions.Get("nope")
	require.ErrorIs(s.T(), err, storage.ErrSessionNotFound)
	require.ErrorIs(s.T(), s.sessions.End("nope", ""), storage.ErrSessionNotFound)
	require.ErrorIs(s.T(), s.sessions.Delete("nope"), storage.ErrSessionNotFound)

	_, err = s.sessions.GetLast()
	require.ErrorIs(s.T(), err, storage.ErrSessionNotFound)
}

func TestOpenDefaultUsesDataHome(t *testing.T) {
	// Registered first so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)

	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	db, err := storage.OpenDefault()
	require.NoError(t, err)
	defer db.Close()

	require.Equal(t, filepath.Join(dataHome, "cubesim", "cubesim.db"), db.Path())
	require.NoError(t, db.MigrateUp())
	require.FileExists(t, db.Path())
}
