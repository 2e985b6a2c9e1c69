// Package recorder journals cube sessions to storage and rebuilds them for
// replay.
package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// ErrNotRecording is returned when moves arrive outside an active session.
var ErrNotRecording = errors.New("recorder: no active session")

// State represents the current state of a journal.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the journal state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Journal writes one session's moves to the database as they happen.
type Journal struct {
	log logrus.FieldLogger

	mu        sync.Mutex
	state     State
	sessionID string
	moveIndex int

	// Repositories
	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	now func() time.Time
}

// NewJournal creates an idle journal backed by db.
func NewJournal(db *storage.DB, log logrus.FieldLogger) *Journal {
	return &Journal{
		log:         log,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
		now:         time.Now,
	}
}

// State returns the current journal state.
func (j *Journal) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// SessionID returns the active or last session ID.
func (j *Journal) SessionID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sessionID
}

// Start opens a new session row.
func (j *Journal) Start(source string, seed int64) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state == StateRecording {
		return "", fmt.Errorf("recorder: session %s already active", j.sessionID)
	}

	id, err := j.sessionRepo.Create(source, seed)
	if err != nil {
		return "", err
	}

	j.state = StateRecording
	j.sessionID = id
	j.moveIndex = 0

	j.log.WithFields(logrus.Fields{
		"session": id,
		"source":  source,
		"seed":    seed,
	}).Info("session started")

	return id, nil
}

// Record journals a single move.
func (j *Journal) Record(m cubesim.Move, kind storage.Kind) error {
	return j.RecordBatch([]cubesim.Move{m}, kind)
}

// RecordBatch journals several moves of one kind in one transaction.
func (j *Journal) RecordBatch(moves []cubesim.Move, kind storage.Kind) error {
	if len(moves) == 0 {
		return nil
	}

	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.Notation()
	}
	return j.write(notations, kind)
}

// RecordReset journals a reset to the solved cube.
func (j *Journal) RecordReset() error {
	return j.write([]string{""}, storage.KindReset)
}

func (j *Journal) write(notations []string, kind storage.Kind) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return ErrNotRecording
	}

	if err := j.moveRepo.CreateBatch(j.sessionID, notations, kind, j.moveIndex, j.now()); err != nil {
		return err
	}
	j.moveIndex += len(notations)

	j.log.WithFields(logrus.Fields{
		"session": j.sessionID,
		"kind":    kind,
		"count":   len(notations),
	}).Debug("moves journaled")

	return nil
}

// End closes the session and stores the final cube.
func (j *Journal) End(final cubesim.Cube) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return ErrNotRecording
	}

	if err := j.sessionRepo.End(j.sessionID, final.Encode()); err != nil {
		return err
	}
	j.state = StateEnded

	j.log.WithFields(logrus.Fields{
		"session": j.sessionID,
		"moves":   j.moveIndex,
		"solved":  final.IsSolved(),
	}).Info("session ended")

	return nil
}
