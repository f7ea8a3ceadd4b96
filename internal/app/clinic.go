package app

import (
	"github.com/vetclinic/vetclinic/internal/clinic/clients"
	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/pets"
	"github.com/vetclinic/vetclinic/internal/clinic/products"
	"github.com/vetclinic/vetclinic/internal/clinic/providers"
	clinicshared "github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
	"github.com/vetclinic/vetclinic/internal/platform/db"
)

// Stores bundles one repository per entity kind.
type Stores struct {
	Clients   clients.Repository
	Pets      pets.Repository
	Medicines medicines.Repository
	Products  products.Repository
	Providers providers.Repository
	Vets      vets.Repository
}

// PostgresStores returns repositories backed by conn.
func PostgresStores(conn db.DBTX) Stores {
	return Stores{
		Clients:   clients.NewRepository(conn),
		Pets:      pets.NewRepository(conn),
		Medicines: medicines.NewRepository(conn),
		Products:  products.NewRepository(conn),
		Providers: providers.NewRepository(conn),
		Vets:      vets.NewRepository(conn),
	}
}

// MemoryStores returns empty process-local repositories.
func MemoryStores() Stores {
	return Stores{
		Clients:   clients.NewMemoryRepository(),
		Pets:      pets.NewMemoryRepository(),
		Medicines: medicines.NewMemoryRepository(),
		Products:  products.NewMemoryRepository(),
		Providers: providers.NewMemoryRepository(),
		Vets:      vets.NewMemoryRepository(),
	}
}

// Clinic holds the services of every entity kind.
type Clinic struct {
	Clients   *clients.Service
	Pets      *pets.Service
	Medicines *medicines.Service
	Products  *products.Service
	Providers *providers.Service
	Vets      *vets.Service
}

// NewClinic wires the services over stores. Pets and products resolve their
// related records through the sibling services.
func NewClinic(stores Stores, validator *clinicshared.Validator) *Clinic {
	c := &Clinic{
		Clients:   clients.NewService(stores.Clients, validator),
		Medicines: medicines.NewService(stores.Medicines, validator),
		Providers: providers.NewService(stores.Providers, validator),
		Vets:      vets.NewService(stores.Vets, validator),
	}
	c.Pets = pets.NewService(stores.Pets, c.Clients, c.Medicines, c.Vets, validator)
	c.Products = products.NewService(stores.Products, c.Providers, validator)
	return c
}

// Routes fills the handler fields of params from the clinic services.
func (c *Clinic) Routes(params RouterParams) RouterParams {
	params.ClientsHandler = clients.NewHandler(params.Pages, c.Clients)
	params.PetsHandler = pets.NewHandler(params.Pages, c.Pets)
	params.MedicinesHandler = medicines.NewHandler(params.Pages, c.Medicines)
	params.ProductsHandler = products.NewHandler(params.Pages, c.Products)
	params.ProvidersHandler = providers.NewHandler(params.Pages, c.Providers)
	params.VetsHandler = vets.NewHandler(params.Pages, c.Vets)
	return params
}
