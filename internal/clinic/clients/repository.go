package clients

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
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, client Client) (int64, error)
	Update(ctx context.Context, id int64, client Client) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectClients = `SELECT id, name, phone, email, address, created_at, updated_at FROM clients`

func (r *repository) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.Query(ctx, selectClients+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("clients: list: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("clients: scan: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Client, error) {
	var c Client
	err := r.db.QueryRow(ctx, selectClients+` WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Client{}, shared.ErrNotFound
	}
	if err != nil {
		return Client{}, fmt.Errorf("clients: get %d: %w", id, err)
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, client Client) (int64, error) {
	query := `INSERT INTO clients (name, phone, email, address, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, client.Name, client.Phone, client.Email, client.Address, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("clients: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, client Client) error {
	query := `UPDATE clients SET name = $1, phone = $2, email = $3, address = $4, updated_at = $5 WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, client.Name, client.Phone, client.Email, client.Address, time.Now(), id)
	if err != nil {
		return fmt.Errorf("clients: update %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("clients: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
