package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"zoo-records/internal/ports/blob"
)

// Store guarda cada key como un archivo bajo root.
// Put escribe a un temporal en el mismo directorio, hace fsync y lo renombra encima
// del archivo final, así un fallo a mitad de escritura nunca deja un JSON truncado.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("file: create root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Driver() blob.Driver { return blob.DriverFile }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, blob.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) Close() error { return nil }

// Path expone la ruta en disco de una key (útil para tests y logs).
func (s *Store) Path(key string) (string, error) {
	return s.pathFor(key)
}

// pathFor evita que una key se escape de root.
func (s *Store) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("file: empty key")
	}
	if strings.HasPrefix(key, "/") || filepath.IsAbs(key) {
		return "", fmt.Errorf("file: invalid absolute key %q", key)
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file: invalid key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
