package session

import (
	"context"
	"database/sql"
	"time"

	"turfease/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the value for key, or "" when unset.
// PRE: token and key are non-empty
func (s *SQLiteStore) Get(ctx context.Context, token, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM session_value WHERE token = ? AND key = ?", token, key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// Set writes key=value for the session.
// POST: the value is visible to subsequent reads
func (s *SQLiteStore) Set(ctx context.Context, token, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO session_value (token, key, value, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT(token, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at",
		token, key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a single key.
func (s *SQLiteStore) Delete(ctx context.Context, token, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_value WHERE token = ? AND key = ?", token, key)
	return err
}

// Clear removes every key held for the session.
func (s *SQLiteStore) Clear(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_value WHERE token = ?", token)
	return err
}

// Snapshot returns a point-in-time copy of all values for the session.
func (s *SQLiteStore) Snapshot(ctx context.Context, token string) (Values, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM session_value WHERE token = ?", token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(Values)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}
