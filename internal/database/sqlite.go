package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// registers "sqlite" driver
	_ "modernc.org/sqlite"
)

// SQLiteCounterStore keeps counters in a sqlite table.
type SQLiteCounterStore struct {
	conn *sql.DB
}

// NewSQLiteCounterStore opens sqlite database at dbPath and creates counters table.
// Use ":memory:" for a throwaway database.
func NewSQLiteCounterStore(dbPath string) (*SQLiteCounterStore, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// In-memory databases exist per connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS counters (
			id    TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		);
	`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating counters table: %w", err)
	}

	return &SQLiteCounterStore{conn: conn}, nil
}

// Increment adds 1 to the counter stored under key, creating it with 1 if absent.
// Done with a single upsert statement, so concurrent increments are never lost.
func (s *SQLiteCounterStore) Increment(ctx context.Context, key string) (int64, error) {
	var count int64
	err := s.conn.QueryRowContext(ctx, `
		INSERT INTO counters (id, count) VALUES (?, 1)
		ON CONFLICT (id) DO UPDATE SET count = count + 1
		RETURNING count
	`, key).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("incrementing counter %s: %w", key, err)
	}

	return count, nil
}

// Count returns counter value stored under key. Returns 0 if there's no counter stored.
func (s *SQLiteCounterStore) Count(ctx context.Context, key string) (int64, error) {
	var count int64
	err := s.conn.QueryRowContext(ctx, `SELECT count FROM counters WHERE id = ?`, key).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading counter %s: %w", key, err)
	}

	return count, nil
}

// Close closes database.
func (s *SQLiteCounterStore) Close() error {
	return s.conn.Close()
}
