package order

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const insertOrderQuery = `
	INSERT INTO orders (customer_name, customer_email, cart)
	VALUES ($1,$2,$3)
	RETURNING id, created_at::text
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	cartJSON, err := json.Marshal(ord.Cart)
	if err != nil {
		return Order{}, fmt.Errorf("encoding cart: %w", err)
	}

	if err := r.db.QueryRow(insertOrderQuery, ord.CustomerName, ord.CustomerEmail, cartJSON).
		Scan(&ord.ID, &ord.CreatedAt); err != nil {
		return Order{}, fmt.Errorf("inserting order: %w", err)
	}
	return ord, nil
}
