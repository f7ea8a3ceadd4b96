package providers

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Provider]
	now   func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Provider](), now: time.Now}
}

func (m *memoryRepository) List(_ context.Context) ([]Provider, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Provider, error) {
	rec, err := m.table.Get(id)
	if err != nil {
		return Provider{}, shared.ErrNotFound
	}
	return rec, nil
}

func (m *memoryRepository) Create(_ context.Context, provider Provider) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Provider {
		provider.ID = id
		provider.CreatedAt = now
		provider.UpdatedAt = now
		return provider
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, provider Provider) error {
	err := m.table.Update(id, func(stored Provider) Provider {
		provider.ID = stored.ID
		provider.CreatedAt = stored.CreatedAt
		provider.UpdatedAt = m.now()
		return provider
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
