package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zoo-records/internal/ports/blob"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// DocumentsRepo guarda cada colección como una fila JSONB (una key = un documento).
type DocumentsRepo struct {
	db *sql.DB
}

func NewDocumentsRepo(ctx context.Context, db *sql.DB) (*DocumentsRepo, error) {
	if _, err := db.ExecContext(ctx, createDocumentsTable); err != nil {
		return nil, fmt.Errorf("postgres: ensure documents table: %w", err)
	}
	return &DocumentsRepo{db: db}, nil
}

func (r *DocumentsRepo) Driver() blob.Driver { return blob.DriverPostgres }

func (r *DocumentsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, blob.ErrNotExist
	}

	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload::text
		FROM documents
		WHERE key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blob.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Put hace upsert; la fila se reemplaza en una sola sentencia.
func (r *DocumentsRepo) Put(ctx context.Context, key string, data []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("postgres: empty key")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (key, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, key, string(data))
	return err
}

func (r *DocumentsRepo) Close() error {
	return r.db.Close()
}
