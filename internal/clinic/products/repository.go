package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/platform/db"
)

// Repository persists products. The provider link is written with the
// product; a nil ProviderID on Update keeps the current provider.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (int64, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectProducts = `SELECT id, name, type, price, provider_id, created_at, updated_at FROM products`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Price, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, selectProducts+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, selectProducts+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get %d: %w", id, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (int64, error) {
	query := `INSERT INTO products (name, type, price, provider_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, product.Name, product.Type, product.Price, product.ProviderID, time.Now()).Scan(&id)
	if db.IsForeignKeyViolation(err) {
		return 0, shared.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("products: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	query := `UPDATE products SET name = $1, type = $2, price = $3, provider_id = COALESCE($4, provider_id), updated_at = $5 WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, product.Name, product.Type, product.Price, product.ProviderID, time.Now(), id)
	if db.IsForeignKeyViolation(err) {
		return shared.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("products: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
