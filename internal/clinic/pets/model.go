package pets

import (
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/clients"
	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
)

type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Birthday  time.Time `json:"birthday"`
	Weight    float64   `json:"weight"`
	ClientID  *int64    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListItem is a pet row together with its owner's display name.
type ListItem struct {
	Pet
	OwnerName string
}

// History is the clinical record of one pet.
type History struct {
	Pet       Pet
	Owner     *clients.Client
	Medicines []medicines.Medicine
	Vets      []vets.Vet
}
