package medicines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]Medicine, error)
	Get(ctx context.Context, id int64) (Medicine, error)
	Create(ctx context.Context, medicine Medicine) (int64, error)
	Update(ctx context.Context, id int64, medicine Medicine) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectMedicines = `SELECT id, name, description, dose, created_at, updated_at FROM medicines`

func (r *repository) List(ctx context.Context) ([]Medicine, error) {
	rows, err := r.db.Query(ctx, selectMedicines+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("medicines: list: %w", err)
	}
	defer rows.Close()

	var medicines []Medicine
	for rows.Next() {
		var m Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Dose, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("medicines: scan: %w", err)
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Medicine, error) {
	var m Medicine
	err := r.db.QueryRow(ctx, selectMedicines+` WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Description, &m.Dose, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Medicine{}, shared.ErrNotFound
	}
	if err != nil {
		return Medicine{}, fmt.Errorf("medicines: get %d: %w", id, err)
	}
	return m, nil
}

func (r *repository) Create(ctx context.Context, medicine Medicine) (int64, error) {
	query := `INSERT INTO medicines (name, description, dose, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, medicine.Name, medicine.Description, medicine.Dose, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("medicines: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, medicine Medicine) error {
	query := `UPDATE medicines SET name = $1, description = $2, dose = $3, updated_at = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, query, medicine.Name, medicine.Description, medicine.Dose, time.Now(), id)
	if err != nil {
		return fmt.Errorf("medicines: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("medicines: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
