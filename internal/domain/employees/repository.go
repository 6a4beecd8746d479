package employees

import (
	"context"

	"zoo-records/internal/domain/records"
	"zoo-records/internal/ports/blob"
)

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int) (Employee, error)
	Insert(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, id int, apply func(*Employee) error) (Employee, error)
	Delete(ctx context.Context, id int) error
}

var Schema = records.Schema[Employee]{
	Collection:  "employee",
	Key:         "staffs.json",
	UniqueField: "name",
	ID:          func(e Employee) int { return e.ID },
	SetID:       func(e *Employee, id int) { e.ID = id },
	UniqueKey:   func(e Employee) string { return e.Name },
}

func NewRepository(b blob.Store, opts records.Options) *records.Store[Employee] {
	return records.NewStore(b, Schema, opts)
}
