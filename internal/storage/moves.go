package storage

import (
	"fmt"
	"time"

	"github.com/seamusw/cubelet"
)

// MoveRecord is one move within a session. TsMs is milliseconds since the
// session started.
type MoveRecord struct {
	SessionID string
	Seq       int
	Move      cubelet.Move
	TsMs      int64
}

// MoveRepository provides access to the session_moves table.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append stores the next move of a session.
func (r *MoveRepository) Append(sessionID string, seq int, m cubelet.Move, ts time.Duration) error {
	_, err := r.db.Exec(
		`INSERT INTO session_moves (session_id, seq, axis, side, turns, notation, ts_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, seq, m.Axis, m.Side, m.Turns, m.Notation(), ts.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}
	return nil
}

// ListBySession returns a session's moves in sequence order.
func (r *MoveRepository) ListBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(
		`SELECT session_id, seq, axis, side, turns, ts_ms
		 FROM session_moves WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var rec MoveRecord
		err := rows.Scan(&rec.SessionID, &rec.Seq, &rec.Move.Axis, &rec.Move.Side, &rec.Move.Turns, &rec.TsMs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		// Stored fields are trusted but cheap to re-check; a row edited
		// by hand must not reach Apply.
		if err := rec.Move.Validate(); err != nil {
			return nil, fmt.Errorf("move %d of session %s: %w", rec.Seq, sessionID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountBySession returns how many moves a session holds.
func (r *MoveRepository) CountBySession(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM session_moves WHERE session_id = ?", sessionID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return n, nil
}
