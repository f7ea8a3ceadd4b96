package products

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Product]
	now   func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Product](), now: time.Now}
}

func (m *memoryRepository) List(_ context.Context) ([]Product, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Product, error) {
	rec, err := m.table.Get(id)
	if err != nil {
		return Product{}, shared.ErrNotFound
	}
	return rec, nil
}

func (m *memoryRepository) Create(_ context.Context, product Product) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Product {
		product.ID = id
		product.CreatedAt = now
		product.UpdatedAt = now
		return product
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, product Product) error {
	err := m.table.Update(id, func(stored Product) Product {
		product.ID = stored.ID
		if product.ProviderID == nil {
			product.ProviderID = stored.ProviderID
		}
		product.CreatedAt = stored.CreatedAt
		product.UpdatedAt = m.now()
		return product
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
