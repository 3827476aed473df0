package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id does not exist.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is a recorded interactive session. EndedAt is nil while the
// session is still open.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Notes     string
}

// SessionRepository provides access to the sessions table.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new open session and returns it.
func (r *SessionRepository) Create(notes string) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Notes:     notes,
	}

	_, err := r.db.Exec(
		"INSERT INTO sessions (id, started_at, notes) VALUES (?, ?, ?)",
		s.ID, s.StartedAt.Format(time.RFC3339Nano), s.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s, nil
}

// End marks a session as ended.
func (r *SessionRepository) End(id string) error {
	res, err := r.db.Exec(
		"UPDATE sessions SET ended_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Get returns a session by id.
func (r *SessionRepository) Get(id string) (*Session, error) {
	row := r.db.QueryRow(
		"SELECT id, started_at, ended_at, notes FROM sessions WHERE id = ?", id,
	)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	rows, err := r.db.Query(
		"SELECT id, started_at, ended_at, notes FROM sessions ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var (
		s       Session
		started string
		ended   sql.NullString
	)
	if err := row.Scan(&s.ID, &started, &ended, &s.Notes); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return nil, fmt.Errorf("bad started_at %q: %w", started, err)
	}
	s.StartedAt = t

	if ended.Valid {
		t, err := time.Parse(time.RFC3339Nano, ended.String)
		if err != nil {
			return nil, fmt.Errorf("bad ended_at %q: %w", ended.String, err)
		}
		s.EndedAt = &t
	}

	return &s, nil
}
