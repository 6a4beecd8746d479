package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-records/internal/ports/blob"
)

// Store guarda documentos en memoria (tests y modo dev sin disco).
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewStore() *Store {
	return &Store{
		docs: make(map[string][]byte),
	}
}

func (s *Store) Driver() blob.Driver { return blob.DriverMemory }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.docs[key]
	if !ok {
		return nil, blob.ErrNotExist
	}
	return append([]byte(nil), b...), nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("memory: empty key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = append([]byte(nil), data...)
	return nil
}

func (s *Store) Close() error { return nil }
