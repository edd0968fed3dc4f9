package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteBackend stores blobs in a single SQLite table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens or creates the database at dbPath.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, &plannererror.ConfigError{Key: "store.path", Reason: "must not be empty"}
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
			return nil, &plannererror.StoreError{Backend: BackendSQLite, Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &plannererror.StoreError{Backend: BackendSQLite, Op: "open", Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, &plannererror.StoreError{Backend: BackendSQLite, Op: "create schema", Err: err}
	}

	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &plannererror.StoreError{Backend: BackendSQLite, Op: "get", Key: key, Err: err}
	}
	return []byte(value), true, nil
}

func (s *SQLiteBackend) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO blobs (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), now)
	if err != nil {
		return &plannererror.StoreError{Backend: BackendSQLite, Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *SQLiteBackend) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM blobs WHERE key = ?", key); err != nil {
		return &plannererror.StoreError{Backend: BackendSQLite, Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
