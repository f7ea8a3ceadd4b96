package vets

import (
	"context"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

type Service struct {
	repo      Repository
	validator *shared.Validator
}

func NewService(repo Repository, validator *shared.Validator) *Service {
	return &Service{repo: repo, validator: validator}
}

func (s *Service) List(ctx context.Context) ([]Vet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Vet, error) {
	if id <= 0 {
		return Vet{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form Form) (int64, error) {
	vet, err := s.validate(form.normalize())
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, vet)
}

// Update replaces every editable field of an existing vet.
func (s *Service) Update(ctx context.Context, id int64, form Form) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	vet, err := s.validate(form.normalize())
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, vet)
}

func (s *Service) Save(ctx context.Context, form Form) (int64, error) {
	id, err := shared.ParseOptionalID(form.ID)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return s.Create(ctx, form)
	}
	return *id, s.Update(ctx, *id, form)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
