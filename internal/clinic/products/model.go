package products

import "time"

type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Price      float64   `json:"price"`
	ProviderID *int64    `json:"provider_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListItem is a product row together with its provider's display name.
type ListItem struct {
	Product
	ProviderName string
}
