package clients

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table *memstore.Table[Client]
	now   func() time.Time
}

// NewMemoryRepository returns a Repository kept in process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{table: memstore.NewTable[Client](), now: time.Now}
}

func (m *memoryRepository) List(_ context.Context) ([]Client, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Client, error) {
	c, err := m.table.Get(id)
	if err != nil {
		return Client{}, shared.ErrNotFound
	}
	return c, nil
}

func (m *memoryRepository) Create(_ context.Context, client Client) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Client {
		client.ID = id
		client.CreatedAt = now
		client.UpdatedAt = now
		return client
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, client Client) error {
	err := m.table.Update(id, func(stored Client) Client {
		client.ID = stored.ID
		client.CreatedAt = stored.CreatedAt
		client.UpdatedAt = m.now()
		return client
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
