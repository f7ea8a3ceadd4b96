package pets

import (
	"context"
	"errors"

	"github.com/vetclinic/vetclinic/internal/clinic/clients"
	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
)

type ClientDirectory interface {
	Get(ctx context.Context, id int64) (clients.Client, error)
	List(ctx context.Context) ([]clients.Client, error)
}

type MedicineDirectory interface {
	Get(ctx context.Context, id int64) (medicines.Medicine, error)
	List(ctx context.Context) ([]medicines.Medicine, error)
}

type VetDirectory interface {
	Get(ctx context.Context, id int64) (vets.Vet, error)
	List(ctx context.Context) ([]vets.Vet, error)
}

type Service struct {
	repo      Repository
	clients   ClientDirectory
	medicines MedicineDirectory
	vets      VetDirectory
	validator *shared.Validator
}

func NewService(repo Repository, clients ClientDirectory, medicines MedicineDirectory, vets VetDirectory, validator *shared.Validator) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		medicines: medicines,
		vets:      vets,
		validator: validator,
	}
}

// List returns every pet with its owner's name.
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	pets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(owners))
	for _, c := range owners {
		names[c.ID] = c.Name
	}

	items := make([]ListItem, 0, len(pets))
	for _, p := range pets {
		item := ListItem{Pet: p}
		if p.ClientID != nil {
			item.OwnerName = names[*p.ClientID]
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ClientOptions(ctx context.Context) ([]clients.Client, error) {
	return s.clients.List(ctx)
}

func (s *Service) MedicineOptions(ctx context.Context) ([]medicines.Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *Service) VetOptions(ctx context.Context) ([]vets.Vet, error) {
	return s.vets.List(ctx)
}

// Create stores a pet together with its owner link. The owner is looked up
// before anything is written.
func (s *Service) Create(ctx context.Context, form Form) (int64, error) {
	form = form.normalize()
	pet, err := s.validate(form)
	if err != nil {
		return 0, err
	}
	if pet.ClientID, err = s.resolveClient(ctx, form.Client); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, pet)
}

// Update replaces the pet fields. A blank client keeps the current owner.
func (s *Service) Update(ctx context.Context, id int64, form Form) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	form = form.normalize()
	pet, err := s.validate(form)
	if err != nil {
		return err
	}
	if pet.ClientID, err = s.resolveClient(ctx, form.Client); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, pet)
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

// History collects the owner, medicines and vets linked to a pet. Links to
// records that no longer exist are skipped.
func (s *Service) History(ctx context.Context, id int64) (History, error) {
	pet, err := s.Get(ctx, id)
	if err != nil {
		return History{}, err
	}
	history := History{Pet: pet}

	if pet.ClientID != nil {
		owner, err := s.clients.Get(ctx, *pet.ClientID)
		switch {
		case err == nil:
			history.Owner = &owner
		case !errors.Is(err, shared.ErrNotFound):
			return History{}, err
		}
	}

	medicineIDs, err := s.repo.MedicineIDs(ctx, id)
	if err != nil {
		return History{}, err
	}
	for _, mid := range medicineIDs {
		m, err := s.medicines.Get(ctx, mid)
		if errors.Is(err, shared.ErrNotFound) {
			continue
		}
		if err != nil {
			return History{}, err
		}
		history.Medicines = append(history.Medicines, m)
	}

	vetIDs, err := s.repo.VetIDs(ctx, id)
	if err != nil {
		return History{}, err
	}
	for _, vid := range vetIDs {
		v, err := s.vets.Get(ctx, vid)
		if errors.Is(err, shared.ErrNotFound) {
			continue
		}
		if err != nil {
			return History{}, err
		}
		history.Vets = append(history.Vets, v)
	}
	return history, nil
}

// AttachHistory links the medicine and vet named in form to the pet. Blank
// fields are skipped; every named record must exist before anything is
// written.
func (s *Service) AttachHistory(ctx context.Context, petID int64, form HistoryForm) error {
	if _, err := s.Get(ctx, petID); err != nil {
		return err
	}
	medicineID, err := shared.ParseOptionalID(form.Medicine)
	if err != nil {
		return err
	}
	vetID, err := shared.ParseOptionalID(form.Vet)
	if err != nil {
		return err
	}
	if medicineID != nil {
		if _, err := s.medicines.Get(ctx, *medicineID); err != nil {
			return err
		}
	}
	if vetID != nil {
		if _, err := s.vets.Get(ctx, *vetID); err != nil {
			return err
		}
	}

	if medicineID != nil {
		if err := s.repo.AddMedicine(ctx, petID, *medicineID); err != nil {
			return err
		}
	}
	if vetID != nil {
		if err := s.repo.AddVet(ctx, petID, *vetID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) resolveClient(ctx context.Context, raw string) (*int64, error) {
	id, err := shared.ParseOptionalID(raw)
	if err != nil || id == nil {
		return nil, err
	}
	if _, err := s.clients.Get(ctx, *id); err != nil {
		return nil, err
	}
	return id, nil
}
