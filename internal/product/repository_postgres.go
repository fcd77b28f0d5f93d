package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listActiveQuery = `
		SELECT id, name, description, price, image_url, active
		FROM products
		WHERE active = true
		ORDER BY name
	`
	getByIDQuery = `
		SELECT id, name, description, price, image_url, active
		FROM products
		WHERE id = $1
	`
	listByIDsQuery = `
		SELECT id, name, description, price, image_url, active
		FROM products
		WHERE id = ANY($1::uuid[])
		ORDER BY array_position($1::uuid[], id)
	`
	insertProductQuery = `
		INSERT INTO products (name, description, price, image_url, active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive() ([]Product, error) {
	rows, err := r.db.Query(listActiveQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(getByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(listByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Reset deletes all products and inserts the provided list in a single
// transaction. Only the dev seeding endpoint reaches this.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}

	for _, p := range products {
		var id string
		if err := tx.QueryRow(insertProductQuery, p.Name, p.Description, p.Price, p.ImageURL, p.Active).Scan(&id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var description sql.NullString
	var imageURL sql.NullString

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Price,
		&imageURL,
		&p.Active,
	); err != nil {
		return Product{}, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}

	return p, nil
}
