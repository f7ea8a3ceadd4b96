package providers

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
	List(ctx context.Context) ([]Provider, error)
	Get(ctx context.Context, id int64) (Provider, error)
	Create(ctx context.Context, provider Provider) (int64, error)
	Update(ctx context.Context, id int64, provider Provider) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectProviders = `SELECT id, name, email, address, created_at, updated_at FROM providers`

func (r *repository) List(ctx context.Context) ([]Provider, error) {
	rows, err := r.db.Query(ctx, selectProviders+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("providers: list: %w", err)
	}
	defer rows.Close()

	var providers []Provider
	for rows.Next() {
		var p Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("providers: scan: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Provider, error) {
	var p Provider
	err := r.db.QueryRow(ctx, selectProviders+` WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Provider{}, shared.ErrNotFound
	}
	if err != nil {
		return Provider{}, fmt.Errorf("providers: get %d: %w", id, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, provider Provider) (int64, error) {
	query := `INSERT INTO providers (name, email, address, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, provider.Name, provider.Email, provider.Address, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("providers: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, provider Provider) error {
	query := `UPDATE providers SET name = $1, email = $2, address = $3, updated_at = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, query, provider.Name, provider.Email, provider.Address, time.Now(), id)
	if err != nil {
		return fmt.Errorf("providers: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("providers: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
