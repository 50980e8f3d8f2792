package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/pkg/database"
	apperrors "github.com/salesdash/api/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, product_name, time, price, quantity, net_price, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.ProductName,
		p.Time,
		p.Price,
		p.Quantity,
		p.NetPrice,
		p.Category,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// List returns all products in insertion order (created_at, then id as a
// tiebreaker) so listings and pagination are reproducible.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, product_name, time, price, quantity, net_price, category, created_at
		FROM products
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.ProductName,
			&p.Time,
			&p.Price,
			&p.Quantity,
			&p.NetPrice,
			&p.Category,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, product_name, time, price, quantity, net_price, category, created_at
		FROM products
		WHERE id = $1`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ProductName,
		&p.Time,
		&p.Price,
		&p.Quantity,
		&p.NetPrice,
		&p.Category,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// Update replaces every mutable field of an existing product. Concurrent
// updates are last-write-wins; there is no version check.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `
		UPDATE products
		SET product_name = $1, time = $2, price = $3, quantity = $4, net_price = $5, category = $6
		WHERE id = $7`

	ct, err := r.pool.Exec(ctx, query,
		p.ProductName,
		p.Time,
		p.Price,
		p.Quantity,
		p.NetPrice,
		p.Category,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Product")
	}

	return nil
}

// Delete removes a product by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("Product")
	}

	return nil
}

// DeleteAll removes every product and returns the removed count. The sweep
// is a single statement, so it cannot leave a partial result behind.
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("delete all products: %w", err)
	}

	return ct.RowsAffected(), nil
}
