package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Schema describe la forma de un tipo de record para el Store genérico.
type Schema[R any] struct {
	// Collection es el nombre singular ("animal", "employee"); aparece en mensajes de error.
	Collection string
	// Key es la key por defecto del documento en el blob store.
	Key string
	// UniqueField es el campo requerido y único (species, name).
	UniqueField string

	ID        func(R) int
	SetID     func(*R, int)
	UniqueKey func(R) string
}

const documentVersion = 1

type documentMeta struct {
	Collection string    `json:"collection"`
	Version    int       `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// document es el formato persistido. load también acepta el formato legado (array pelado).
type document[R any] struct {
	Meta    documentMeta `json:"_meta"`
	NextID  int          `json:"next_id"`
	Records []R          `json:"records"`
}

// storedDocument es la vista de lectura de document: Records nil = clave ausente o null.
type storedDocument[R any] struct {
	NextID  int  `json:"next_id"`
	Records *[]R `json:"records"`
}

type collection[R any] struct {
	nextID int
	items  []R
}

func (s *Store[R]) decode(data []byte) (collection[R], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return collection[R]{}, fmt.Errorf("%w: %s: empty document", ErrStorageCorrupt, s.key)
	}

	var doc document[R]
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Records); err != nil {
			return collection[R]{}, fmt.Errorf("%w: %s: %v", ErrStorageCorrupt, s.key, err)
		}
	} else {
		// records es obligatorio: null, {} o un objeto sin "records" no son una colección vacía
		var env storedDocument[R]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return collection[R]{}, fmt.Errorf("%w: %s: %v", ErrStorageCorrupt, s.key, err)
		}
		if env.Records == nil {
			return collection[R]{}, fmt.Errorf("%w: %s: missing \"records\"", ErrStorageCorrupt, s.key)
		}
		doc.NextID, doc.Records = env.NextID, *env.Records
	}

	maxID := 0
	seen := make(map[int]struct{}, len(doc.Records))
	for _, r := range doc.Records {
		id := s.schema.ID(r)
		if id <= 0 {
			return collection[R]{}, fmt.Errorf("%w: %s: invalid id %d", ErrStorageCorrupt, s.key, id)
		}
		if _, dup := seen[id]; dup {
			return collection[R]{}, fmt.Errorf("%w: %s: duplicated id %d", ErrStorageCorrupt, s.key, id)
		}
		seen[id] = struct{}{}
		if id > maxID {
			maxID = id
		}
	}

	next := doc.NextID
	if next <= maxID {
		next = maxID + 1
	}

	items := doc.Records
	if items == nil {
		items = make([]R, 0)
	}
	return collection[R]{nextID: next, items: items}, nil
}

func (s *Store[R]) encode(c collection[R]) ([]byte, error) {
	doc := document[R]{
		Meta: documentMeta{
			Collection: s.schema.Collection,
			Version:    documentVersion,
			UpdatedAt:  s.now().UTC(),
		},
		NextID:  c.nextID,
		Records: c.items,
	}
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
