package recorder_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

func openDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())
	t.Cleanup(func() { db.Close() })
	return db
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestJournalRoundTrip(t *testing.T) {
	db := openDB(t)
	j := recorder.NewJournal(db, quietLogger())
	require.Equal(t, recorder.StateIdle, j.State())

	session := cubesim.NewSession(cubesim.WithSeed(5), cubesim.WithScrambleLength(20))
	id, err := j.Start("test", session.Seed())
	require.NoError(t, err)
	require.Equal(t, recorder.StateRecording, j.State())

	require.NoError(t, j.RecordBatch(session.Scramble(), storage.KindScramble))
	for _, m := range []cubesim.Move{cubesim.MoveR, cubesim.MoveM, cubesim.MoveX} {
		session.Apply(m)
		require.NoError(t, j.Record(m, storage.KindUser))
	}
	for {
		m, ok := session.UndoStep()
		if !ok {
			break
		}
		require.NoError(t, j.Record(m, storage.KindUndo))
	}
	session.Apply(cubesim.MoveF)
	require.NoError(t, j.Record(cubesim.MoveF, storage.KindUser))

	require.NoError(t, j.End(session.Cube()))
	require.Equal(t, recorder.StateEnded, j.State())

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 20+3+3+1)

	rebuilt, err := recorder.Rebuild(records)
	require.NoError(t, err)
	assert.True(t, rebuilt.Equal(session.Cube()), "replaying the journal reproduces the final cube")

	stored, err := storage.NewSessionRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, stored.FinalState)
	assert.Equal(t, session.Cube().Encode(), *stored.FinalState)
	assert.Equal(t, 27, stored.MoveCount)
}

func TestJournalReset(t *testing.T) {
	db := openDB(t)
	j := recorder.NewJournal(db, quietLogger())
	id, err := j.Start("test", 1)
	require.NoError(t, err)

	require.NoError(t, j.Record(cubesim.MoveU, storage.KindUser))
	require.NoError(t, j.RecordReset())
	require.NoError(t, j.Record(cubesim.MoveD, storage.KindUser))

	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)

	steps, err := recorder.Steps(records)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.True(t, steps[1].Reset)

	rebuilt, err := recorder.Rebuild(records)
	require.NoError(t, err)
	assert.True(t, rebuilt.Equal(cubesim.Apply(cubesim.NewCube(), cubesim.MoveD)))
}

func TestJournalRequiresActiveSession(t *testing.T) {
	j := recorder.NewJournal(openDB(t), quietLogger())
	require.ErrorIs(t, j.Record(cubesim.MoveR, storage.KindUser), recorder.ErrNotRecording)
	require.ErrorIs(t, j.End(cubesim.NewCube()), recorder.ErrNotRecording)

	_, err := j.Start("test", 1)
	require.NoError(t, err)
	_, err = j.Start("test", 1)
	require.Error(t, err, "second start while recording")
}

func TestStepsRejectsCorruptNotation(t *testing.T) {
	_, err := recorder.Steps([]storage.MoveRecord{{Notation: "Q", Kind: storage.KindUser}})
	require.ErrorIs(t, err, cubesim.ErrInvalidNotation)
}
