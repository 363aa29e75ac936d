// Package storage persists contact submissions received by the inbox service.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/ensigniasec/portfolio/internal/validate"
)

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("submission not found")

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id            TEXT PRIMARY KEY,
	request_id    TEXT NOT NULL DEFAULT '',
	first_name    TEXT NOT NULL DEFAULT '',
	last_name     TEXT NOT NULL DEFAULT '',
	email_address TEXT NOT NULL,
	email_message TEXT NOT NULL DEFAULT '',
	received_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS submissions_received_at ON submissions (received_at);
`

// Submission is one stored contact form payload.
type Submission struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"requestId,omitempty"`
	FirstName    string    `json:"firstName" validate:"max=200"`
	LastName     string    `json:"lastName" validate:"max=200"`
	EmailAddress string    `json:"emailAddress" validate:"required,email"`
	EmailMessage string    `json:"emailMessage" validate:"max=10000"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

// Store is a SQLite-backed submission store.
type Store struct {
	Path string `validate:"required"`
	db   *sql.DB
	now  func() time.Time
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}
	s := &Store{Path: expandedPath, now: time.Now}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("storage path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	logrus.Debug("Opening inbox database at: ", s.Path)
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY under the gin worker pool.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	s.db = db
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save validates and inserts sub, assigning ID and ReceivedAt when unset.
func (s *Store) Save(ctx context.Context, sub Submission) (Submission, error) {
	if err := validate.Struct(sub); err != nil {
		return Submission{}, fmt.Errorf("invalid submission: %w", err)
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = s.now()
	}
	sub.ReceivedAt = sub.ReceivedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, request_id, first_name, last_name, email_address, email_message, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.RequestID, sub.FirstName, sub.LastName, sub.EmailAddress, sub.EmailMessage,
		sub.ReceivedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	logrus.WithFields(logrus.Fields{"id": sub.ID, "request_id": sub.RequestID}).Debug("stored submission")
	return sub, nil
}

// List returns up to limit submissions, newest first. A limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Submission, error) {
	q := `SELECT id, request_id, first_name, last_name, email_address, email_message, received_at
		FROM submissions ORDER BY received_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// Get returns the submission with id.
func (s *Store) Get(ctx context.Context, id string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, request_id, first_name, last_name, email_address, email_message, received_at
		FROM submissions WHERE id = ?`, id)
	sub, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sub, err
}

// Count returns the number of stored submissions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner) (Submission, error) {
	var sub Submission
	var received string
	if err := r.Scan(&sub.ID, &sub.RequestID, &sub.FirstName, &sub.LastName,
		&sub.EmailAddress, &sub.EmailMessage, &received); err != nil {
		return Submission{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, received)
	if err != nil {
		return Submission{}, fmt.Errorf("parse received_at %q: %w", received, err)
	}
	sub.ReceivedAt = t
	return sub, nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
