package animals

import (
	"context"

	"zoo-records/internal/domain/records"
	"zoo-records/internal/ports/blob"
)

type Repository interface {
	List(ctx context.Context) ([]Animal, error)
	Get(ctx context.Context, id int) (Animal, error)
	Insert(ctx context.Context, a Animal) (Animal, error)
	Update(ctx context.Context, id int, apply func(*Animal) error) (Animal, error)
	Delete(ctx context.Context, id int) error
}

// Schema parametriza el Record Store genérico para animales.
var Schema = records.Schema[Animal]{
	Collection:  "animal",
	Key:         "animals.json",
	UniqueField: "species",
	ID:          func(a Animal) int { return a.ID },
	SetID:       func(a *Animal, id int) { a.ID = id },
	UniqueKey:   func(a Animal) string { return a.Species },
}

func NewRepository(b blob.Store, opts records.Options) *records.Store[Animal] {
	return records.NewStore(b, Schema, opts)
}
