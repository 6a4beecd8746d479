package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"zoo-records/internal/ports/blob"
)

// Observer recibe el resultado de cada operación (métricas), ya clasificado con Result.
type Observer interface {
	ObserveOperation(collection, op, result string)
}

type Options struct {
	// Key sobreescribe Schema.Key (p.ej. desde config).
	Key      string
	Observer Observer
}

// Store es el Record Store de una colección.
//
// Cada operación carga la colección completa desde el blob, opera y, si hubo cambios,
// persiste el documento completo. Las mutaciones se serializan con mu para que
// load-mutate-persist no pierda updates ni duplique ids dentro del proceso.
type Store[R any] struct {
	mu     sync.RWMutex
	blob   blob.Store
	schema Schema[R]
	key    string
	obs    Observer
	now    func() time.Time
}

func NewStore[R any](b blob.Store, schema Schema[R], opts Options) *Store[R] {
	key := strings.TrimSpace(opts.Key)
	if key == "" {
		key = schema.Key
	}
	return &Store[R]{
		blob:   b,
		schema: schema,
		key:    key,
		obs:    opts.Observer,
		now:    time.Now,
	}
}

// Key devuelve la key del documento en el blob store.
func (s *Store[R]) Key() string { return s.key }

func (s *Store[R]) List(ctx context.Context) (out []R, err error) {
	defer s.observe("list", &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.items, nil
}

func (s *Store[R]) Get(ctx context.Context, id int) (out R, err error) {
	defer s.observe("get", &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.load(ctx)
	if err != nil {
		return out, err
	}
	idx := s.indexOf(c, id)
	if idx < 0 {
		return out, s.notFound(id)
	}
	return c.items[idx], nil
}

// Insert asigna id y agrega al final. El id que traiga r se ignora.
func (s *Store[R]) Insert(ctx context.Context, r R) (out R, err error) {
	defer s.observe("insert", &err)

	if err := s.validate(r); err != nil {
		return out, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return out, err
	}

	key := s.schema.UniqueKey(r)
	for _, existing := range c.items {
		if s.schema.UniqueKey(existing) == key {
			return out, s.duplicate(key)
		}
	}

	s.schema.SetID(&r, c.nextID)
	c.nextID++
	c.items = append(c.items, r)

	if err := s.persist(ctx, c); err != nil {
		return out, err
	}
	return r, nil
}

// Update aplica apply sobre una copia del record y persiste.
// El id no se puede cambiar: se restaura después de apply.
func (s *Store[R]) Update(ctx context.Context, id int, apply func(*R) error) (out R, err error) {
	defer s.observe("update", &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return out, err
	}
	idx := s.indexOf(c, id)
	if idx < 0 {
		return out, s.notFound(id)
	}

	updated := c.items[idx]
	if err := apply(&updated); err != nil {
		return out, err
	}
	s.schema.SetID(&updated, id)

	if err := s.validate(updated); err != nil {
		return out, err
	}
	key := s.schema.UniqueKey(updated)
	for i, existing := range c.items {
		if i != idx && s.schema.UniqueKey(existing) == key {
			return out, s.duplicate(key)
		}
	}

	c.items[idx] = updated
	if err := s.persist(ctx, c); err != nil {
		return out, err
	}
	return updated, nil
}

func (s *Store[R]) Delete(ctx context.Context, id int) (err error) {
	defer s.observe("delete", &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := s.indexOf(c, id)
	if idx < 0 {
		return s.notFound(id)
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return s.persist(ctx, c)
}

func (s *Store[R]) load(ctx context.Context) (collection[R], error) {
	data, err := s.blob.Get(ctx, s.key)
	if errors.Is(err, blob.ErrNotExist) {
		return collection[R]{nextID: 1, items: make([]R, 0)}, nil
	}
	if err != nil {
		return collection[R]{}, fmt.Errorf("%w: %s: %v", ErrStorageRead, s.key, err)
	}
	return s.decode(data)
}

func (s *Store[R]) persist(ctx context.Context, c collection[R]) error {
	data, err := s.encode(c)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, s.key, err)
	}
	if err := s.blob.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, s.key, err)
	}
	return nil
}

func (s *Store[R]) indexOf(c collection[R], id int) int {
	for i, r := range c.items {
		if s.schema.ID(r) == id {
			return i
		}
	}
	return -1
}

func (s *Store[R]) validate(r R) error {
	if strings.TrimSpace(s.schema.UniqueKey(r)) == "" {
		return fmt.Errorf("%w: '%s' is required", ErrValidation, s.schema.UniqueField)
	}
	return nil
}

func (s *Store[R]) notFound(id int) error {
	return fmt.Errorf("%s %d %w", s.schema.Collection, id, ErrNotFound)
}

func (s *Store[R]) duplicate(key string) error {
	return fmt.Errorf("%s with %s %q %w", s.schema.Collection, s.schema.UniqueField, key, ErrDuplicate)
}

func (s *Store[R]) observe(op string, err *error) {
	if s.obs == nil {
		return
	}
	s.obs.ObserveOperation(s.schema.Collection, op, Result(*err))
}
