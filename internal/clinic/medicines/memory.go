package medicines

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Medicine]
	now   func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Medicine](), now: time.Now}
}

func (m *memoryRepository) List(_ context.Context) ([]Medicine, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Medicine, error) {
	med, err := m.table.Get(id)
	if err != nil {
		return Medicine{}, shared.ErrNotFound
	}
	return med, nil
}

func (m *memoryRepository) Create(_ context.Context, medicine Medicine) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Medicine {
		medicine.ID = id
		medicine.CreatedAt = now
		medicine.UpdatedAt = now
		return medicine
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, medicine Medicine) error {
	err := m.table.Update(id, func(stored Medicine) Medicine {
		medicine.ID = stored.ID
		medicine.CreatedAt = stored.CreatedAt
		medicine.UpdatedAt = m.now()
		return medicine
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
