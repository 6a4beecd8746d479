package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"zoo-records/internal/ports/blob"
)

// DefaultBucket es el bucket bbolt donde viven los documentos.
var DefaultBucket = []byte("documents")

// Store guarda documentos en un archivo bbolt. Cada Put corre en su propia
// transacción de escritura.
type Store struct {
	db *bolt.DB
}

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "zoo.bolt"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("bolt: create dirs: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(DefaultBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Driver() blob.Driver { return blob.DriverBolt }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(DefaultBucket).Get([]byte(key))
		if v == nil {
			return blob.ErrNotExist
		}
		// v solo es válido dentro de la transacción
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("bolt: empty key")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(DefaultBucket).Put([]byte(key), data)
	})
}

func (s *Store) Close() error { return s.db.Close() }
