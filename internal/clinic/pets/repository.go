package pets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/db"
)

// Repository persists pets. Create and Update write the owner link in the
// same statement as the pet; a nil ClientID on Update keeps the current owner.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, pet Pet) (int64, error)
	Update(ctx context.Context, id int64, pet Pet) error
	Delete(ctx context.Context, id int64) error

	AddMedicine(ctx context.Context, petID, medicineID int64) error
	AddVet(ctx context.Context, petID, vetID int64) error
	MedicineIDs(ctx context.Context, petID int64) ([]int64, error)
	VetIDs(ctx context.Context, petID int64) ([]int64, error)
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectPets = `SELECT id, name, breed, birthday, weight, client_id, created_at, updated_at FROM pets`

func scanPet(row pgx.Row) (Pet, error) {
	var p Pet
	err := row.Scan(&p.ID, &p.Name, &p.Breed, &p.Birthday, &p.Weight, &p.ClientID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Pet, error) {
	rows, err := r.db.Query(ctx, selectPets+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pets: list: %w", err)
	}
	defer rows.Close()

	var pets []Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("pets: scan: %w", err)
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Pet, error) {
	p, err := scanPet(r.db.QueryRow(ctx, selectPets+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Pet{}, shared.ErrNotFound
	}
	if err != nil {
		return Pet{}, fmt.Errorf("pets: get %d: %w", id, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, pet Pet) (int64, error) {
	query := `INSERT INTO pets (name, breed, birthday, weight, client_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, pet.Name, pet.Breed, pet.Birthday, pet.Weight, pet.ClientID, time.Now()).Scan(&id)
	if db.IsForeignKeyViolation(err) {
		return 0, shared.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("pets: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, pet Pet) error {
	query := `UPDATE pets SET name = $1, breed = $2, birthday = $3, weight = $4, client_id = COALESCE($5, client_id), updated_at = $6 WHERE id = $7`
	tag, err := r.db.Exec(ctx, query, pet.Name, pet.Breed, pet.Birthday, pet.Weight, pet.ClientID, time.Now(), id)
	if db.IsForeignKeyViolation(err) {
		return shared.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("pets: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pets: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) AddMedicine(ctx context.Context, petID, medicineID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO pet_medicines (pet_id, medicine_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, petID, medicineID)
	if db.IsForeignKeyViolation(err) {
		return shared.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("pets: add medicine %d to %d: %w", medicineID, petID, err)
	}
	return nil
}

func (r *repository) AddVet(ctx context.Context, petID, vetID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO pet_vets (pet_id, vet_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, petID, vetID)
	if db.IsForeignKeyViolation(err) {
		return shared.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("pets: add vet %d to %d: %w", vetID, petID, err)
	}
	return nil
}

func (r *repository) MedicineIDs(ctx context.Context, petID int64) ([]int64, error) {
	return r.linkedIDs(ctx, `SELECT medicine_id FROM pet_medicines WHERE pet_id = $1 ORDER BY created_at, medicine_id`, petID)
}

func (r *repository) VetIDs(ctx context.Context, petID int64) ([]int64, error) {
	return r.linkedIDs(ctx, `SELECT vet_id FROM pet_vets WHERE pet_id = $1 ORDER BY created_at, vet_id`, petID)
}

func (r *repository) linkedIDs(ctx context.Context, query string, petID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, petID)
	if err != nil {
		return nil, fmt.Errorf("pets: linked ids for %d: %w", petID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("pets: linked ids for %d: %w", petID, err)
	}
	return ids, nil
}
