package medicines

import "time"

// Medicine is a drug that can be prescribed to pets. Dose is expressed in
// clinic units from 1 to 10.
type Medicine struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Dose        int       `json:"dose"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
