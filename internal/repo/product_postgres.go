package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

const queryTimeout = 3 * time.Second

const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id            SERIAL PRIMARY KEY,
	name          TEXT,
	quantity      INTEGER,
	min_threshold INTEGER,
	category      TEXT,
	price         NUMERIC(10, 2),
	created_at    TIMESTAMPTZ DEFAULT now()
)`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// EnsureSchema creates the products table when it does not exist yet.
func (r *PostgresProductRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, productsSchema)
	return err
}

func (r *PostgresProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, quantity, min_threshold, category, price, created_at FROM products ORDER BY created_at DESC NULLS LAST, id DESC`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Insert(ctx context.Context, in models.ProductInput) (models.Product, error) {
	query := `INSERT INTO products (name, quantity, min_threshold, category, price) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, quantity, min_threshold, category, price, created_at`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, query, in.Name, in.Quantity, in.MinThreshold, in.Category, in.Price)
	return scanProduct(row)
}

func (r *PostgresProductRepository) Update(ctx context.Context, id int, in models.ProductInput) error {
	query := `UPDATE products SET name = $1, quantity = $2, min_threshold = $3, category = $4, price = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, in.Name, in.Quantity, in.MinThreshold, in.Category, in.Price, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one products row, turning NULL columns into zero values.
func scanProduct(row rowScanner) (models.Product, error) {
	var (
		id           int
		name         sql.NullString
		quantity     sql.NullInt64
		minThreshold sql.NullInt64
		category     sql.NullString
		price        decimal.NullDecimal
		createdAt    sql.NullTime
	)
	if err := row.Scan(&id, &name, &quantity, &minThreshold, &category, &price, &createdAt); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:           id,
		Name:         name.String,
		Quantity:     int(quantity.Int64),
		MinThreshold: int(minThreshold.Int64),
		Category:     category.String,
		CreatedAt:    createdAt.Time,
	}
	if price.Valid {
		p.Price = price.Decimal
	}
	return p, nil
}
