package products

import (
	"context"

	"github.com/vetclinic/vetclinic/internal/clinic/providers"
	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

// ProviderDirectory resolves the providers a product may reference.
type ProviderDirectory interface {
	Get(ctx context.Context, id int64) (providers.Provider, error)
	List(ctx context.Context) ([]providers.Provider, error)
}

type Service struct {
	repo      Repository
	providers ProviderDirectory
	validator *shared.Validator
}

func NewService(repo Repository, providers ProviderDirectory, validator *shared.Validator) *Service {
	return &Service{repo: repo, providers: providers, validator: validator}
}

// List returns every product with the name of its provider, if any.
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	providerList, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(providerList))
	for _, p := range providerList {
		names[p.ID] = p.Name
	}

	items := make([]ListItem, 0, len(products))
	for _, p := range products {
		item := ListItem{Product: p}
		if p.ProviderID != nil {
			item.ProviderName = names[*p.ProviderID]
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// ProviderOptions lists the providers offered by the product form.
func (s *Service) ProviderOptions(ctx context.Context) ([]providers.Provider, error) {
	return s.providers.List(ctx)
}

// Create stores a product together with its provider link. The provider is
// looked up before anything is written.
func (s *Service) Create(ctx context.Context, form Form) (int64, error) {
	form = form.normalize()
	product, err := s.validate(form)
	if err != nil {
		return 0, err
	}
	if product.ProviderID, err = s.resolveProvider(ctx, form.Provider); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, product)
}

// Update replaces the product fields. A blank provider keeps the current link.
func (s *Service) Update(ctx context.Context, id int64, form Form) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	form = form.normalize()
	product, err := s.validate(form)
	if err != nil {
		return err
	}
	if product.ProviderID, err = s.resolveProvider(ctx, form.Provider); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, product)
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

func (s *Service) resolveProvider(ctx context.Context, raw string) (*int64, error) {
	id, err := shared.ParseOptionalID(raw)
	if err != nil || id == nil {
		return nil, err
	}
	if _, err := s.providers.Get(ctx, *id); err != nil {
		return nil, err
	}
	return id, nil
}
