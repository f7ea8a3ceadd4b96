package vets

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
	List(ctx context.Context) ([]Vet, error)
	Get(ctx context.Context, id int64) (Vet, error)
	Create(ctx context.Context, vet Vet) (int64, error)
	Update(ctx context.Context, id int64, vet Vet) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectVets = `SELECT id, name, email, phone, specialty, created_at, updated_at FROM vets`

func scanVet(row pgx.Row) (Vet, error) {
	var v Vet
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Specialty, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *repository) List(ctx context.Context) ([]Vet, error) {
	rows, err := r.db.Query(ctx, selectVets+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("vets: list: %w", err)
	}
	defer rows.Close()

	var vets []Vet
	for rows.Next() {
		v, err := scanVet(rows)
		if err != nil {
			return nil, fmt.Errorf("vets: scan: %w", err)
		}
		vets = append(vets, v)
	}
	return vets, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Vet, error) {
	v, err := scanVet(r.db.QueryRow(ctx, selectVets+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Vet{}, shared.ErrNotFound
	}
	if err != nil {
		return Vet{}, fmt.Errorf("vets: get %d: %w", id, err)
	}
	return v, nil
}

func (r *repository) Create(ctx context.Context, vet Vet) (int64, error) {
	query := `INSERT INTO vets (name, email, phone, specialty, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, vet.Name, vet.Email, vet.Phone, vet.Specialty, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("vets: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, vet Vet) error {
	query := `UPDATE vets SET name = $1, email = $2, phone = $3, specialty = $4, updated_at = $5 WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, vet.Name, vet.Email, vet.Phone, vet.Specialty, time.Now(), id)
	if err != nil {
		return fmt.Errorf("vets: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("vets: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
