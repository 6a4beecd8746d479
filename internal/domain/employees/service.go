package employees

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

// CreateInput: solo Name se normaliza (trim); los campos opcionales se guardan tal cual llegan.
type CreateInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Schedule    any
}

// UpdateInput: nil = no tocar. Schedule necesita ScheduleSet porque null es un valor válido.
type UpdateInput struct {
	ID          *int
	Name        *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Schedule    any
	ScheduleSet bool
}

func (in UpdateInput) empty() bool {
	return in.ID == nil && in.Name == nil && in.Email == nil &&
		in.PhoneNumber == nil && in.Role == nil && !in.ScheduleSet
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	if in.Name == nil {
		return Employee{}, fmt.Errorf("%w: '%s' is required", records.ErrValidation, Schema.UniqueField)
	}

	e := Employee{
		Name:        strings.TrimSpace(*in.Name),
		Email:       DefaultEmail,
		PhoneNumber: DefaultPhoneNumber,
		Role:        DefaultRole,
		Schedule:    in.Schedule,
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		e.PhoneNumber = *in.PhoneNumber
	}
	if in.Role != nil {
		e.Role = *in.Role
	}

	return s.repo.Insert(ctx, e)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Employee, error) {
	return s.repo.Get(ctx, id)
}

// Update es parcial. El id no se puede pisar desde el body.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Employee, error) {
	return s.repo.Update(ctx, id, func(e *Employee) error {
		if in.empty() {
			return fmt.Errorf("%w: request body has no fields to update", records.ErrValidation)
		}
		if in.ID != nil && *in.ID != id {
			return fmt.Errorf("%w: 'id' cannot be changed", records.ErrValidation)
		}

		if in.Name != nil {
			e.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			e.Email = *in.Email
		}
		if in.PhoneNumber != nil {
			e.PhoneNumber = *in.PhoneNumber
		}
		if in.Role != nil {
			e.Role = *in.Role
		}
		if in.ScheduleSet {
			e.Schedule = in.Schedule
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
