package vets

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Vet]
	now   func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Vet](), now: time.Now}
}

func (m *memoryRepository) List(_ context.Context) ([]Vet, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Vet, error) {
	rec, err := m.table.Get(id)
	if err != nil {
		return Vet{}, shared.ErrNotFound
	}
	return rec, nil
}

func (m *memoryRepository) Create(_ context.Context, vet Vet) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Vet {
		vet.ID = id
		vet.CreatedAt = now
		vet.UpdatedAt = now
		return vet
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, vet Vet) error {
	err := m.table.Update(id, func(stored Vet) Vet {
		vet.ID = stored.ID
		vet.CreatedAt = stored.CreatedAt
		vet.UpdatedAt = m.now()
		return vet
	})
	if err != nil {
		return shared.ErrNotFound
	}
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id int64) error {
	if err := m.table.Delete(id); err != nil {
		return shared.ErrNotFound
	}
	return nil
}
