package pets

import (
	"context"
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/memstore"
)

type memoryRepository struct {
	table     *memstore.Table[Pet]
	medicines *memstore.Links
	vets      *memstore.Links
	now       func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		table:     memstore.NewTable[Pet](),
		medicines: memstore.NewLinks(),
		vets:      memstore.NewLinks(),
		now:       time.Now,
	}
}

func (m *memoryRepository) List(_ context.Context) ([]Pet, error) {
	return m.table.List(), nil
}

func (m *memoryRepository) Get(_ context.Context, id int64) (Pet, error) {
	rec, err := m.table.Get(id)
	if err != nil {
		return Pet{}, shared.ErrNotFound
	}
	return rec, nil
}

func (m *memoryRepository) Create(_ context.Context, pet Pet) (int64, error) {
	now := m.now()
	return m.table.Insert(func(id int64) Pet {
		pet.ID = id
		pet.CreatedAt = now
		pet.UpdatedAt = now
		return pet
	}), nil
}

func (m *memoryRepository) Update(_ context.Context, id int64, pet Pet) error {
	err := m.table.Update(id, func(stored Pet) Pet {
		pet.ID = stored.ID
		if pet.ClientID == nil {
			pet.ClientID = stored.ClientID
		}
		pet.CreatedAt = stored.CreatedAt
		pet.UpdatedAt = m.now()
		return pet
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
	m.medicines.DropOwner(id)
	m.vets.DropOwner(id)
	return nil
}

func (m *memoryRepository) AddMedicine(_ context.Context, petID, medicineID int64) error {
	if !m.table.Has(petID) {
		return shared.ErrNotFound
	}
	m.medicines.Add(petID, medicineID)
	return nil
}

func (m *memoryRepository) AddVet(_ context.Context, petID, vetID int64) error {
	if !m.table.Has(petID) {
		return shared.ErrNotFound
	}
	m.vets.Add(petID, vetID)
	return nil
}

func (m *memoryRepository) MedicineIDs(_ context.Context, petID int64) ([]int64, error) {
	return m.medicines.Targets(petID), nil
}

func (m *memoryRepository) VetIDs(_ context.Context, petID int64) ([]int64, error) {
	return m.vets.Targets(petID), nil
}
