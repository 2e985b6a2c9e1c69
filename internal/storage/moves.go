package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Kind classifies a journaled move.
type Kind string

const (
	KindUser     Kind = "user"     // recorded move from the front end
	KindScramble Kind = "scramble" // random turn, never recorded in history
	KindUndo     Kind = "undo"     // inverse applied while replaying history
	KindReset    Kind = "reset"    // cube reset to solved; notation is empty
)

// MoveRecord represents a journaled move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Notation  string
	Kind      Kind
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, ts time.Time, notation string, kind Kind) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, notation, kind)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, moveIndex, ts.UnixMilli(), notation, string(kind))

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates several moves of one kind in a single transaction,
// numbering them from startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, notations []string, kind Kind, startIndex int, ts time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, notation := range notations {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, notation, kind)
				VALUES (?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, ts.UnixMilli(), notation, string(kind))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, notation, kind
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var kind string
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Notation, &kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Kind = Kind(kind)
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// CountBySession returns the number of moves for a session.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}
