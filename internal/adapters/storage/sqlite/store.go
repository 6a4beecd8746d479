package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zoo-records/internal/ports/blob"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store persiste cada documento en una tabla documents(key, payload).
type Store struct {
	db   *sql.DB
	path string
}

func NewStore(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "zoo.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// un solo writer; además mantiene viva la base ":memory:"
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create documents table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Driver() blob.Driver { return blob.DriverSQLite }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM documents WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blob.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("sqlite: empty key")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO documents(key, payload, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`, key, data)
	if err != nil {
		return fmt.Errorf("sqlite: upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path devuelve la ruta configurada de la base.
func (s *Store) Path() string { return s.path }
