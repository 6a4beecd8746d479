package animals

import (
	"context"
	"fmt"
	"strings"

	"zoo-records/internal/domain/records"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput usa punteros: nil = campo ausente (aplica default).
type CreateInput struct {
	Species             *string
	Age                 *int
	Gender              *string
	SpecialRequirements *string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	ID                  *int
	Species             *string
	Age                 *int
	Gender              *string
	SpecialRequirements *string
}

func (in UpdateInput) empty() bool {
	return in.ID == nil && in.Species == nil && in.Age == nil &&
		in.Gender == nil && in.SpecialRequirements == nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if in.Species == nil {
		return Animal{}, fmt.Errorf("%w: '%s' is required", records.ErrValidation, Schema.UniqueField)
	}
	if in.Age != nil && *in.Age < 0 {
		return Animal{}, fmt.Errorf("%w: 'age' must be >= 0", records.ErrValidation)
	}

	a := Animal{
		Species:             strings.TrimSpace(*in.Species),
		Age:                 DefaultAge,
		Gender:              DefaultGender,
		SpecialRequirements: DefaultSpecialRequirements,
	}
	if in.Age != nil {
		a.Age = *in.Age
	}
	if in.Gender != nil {
		a.Gender = *in.Gender
	}
	if in.SpecialRequirements != nil {
		a.SpecialRequirements = *in.SpecialRequirements
	}

	return s.repo.Insert(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Animal, error) {
	return s.repo.Get(ctx, id)
}

// Update es parcial: solo pisa los campos presentes en in.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Animal, error) {
	return s.repo.Update(ctx, id, func(a *Animal) error {
		if in.empty() {
			return fmt.Errorf("%w: request body has no fields to update", records.ErrValidation)
		}
		if in.ID != nil && *in.ID != id {
			return fmt.Errorf("%w: 'id' cannot be changed", records.ErrValidation)
		}
		if in.Age != nil && *in.Age < 0 {
			return fmt.Errorf("%w: 'age' must be >= 0", records.ErrValidation)
		}

		if in.Species != nil {
			a.Species = strings.TrimSpace(*in.Species)
		}
		if in.Age != nil {
			a.Age = *in.Age
		}
		if in.Gender != nil {
			a.Gender = *in.Gender
		}
		if in.SpecialRequirements != nil {
			a.SpecialRequirements = *in.SpecialRequirements
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
