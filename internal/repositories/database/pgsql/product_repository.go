package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	"github.com/fieldlog/farm_manager_app/internal/models"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Cost:        m.Cost,
		Stock:       m.Stock,
		MinStock:    m.MinStock,
		MaxStock:    m.MaxStock,
		Unit:        m.Unit,
		ImageURL:    m.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const productColumns = `product_id, user_id, category_id, name, description, price, cost, stock,
	min_stock, max_stock, unit, image_url, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID, &m.UserID, &m.CategoryID, &m.Name, &m.Description,
		&m.Price, &m.Cost, &m.Stock, &m.MinStock, &m.MaxStock, &m.Unit, &m.ImageURL,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, user_id, category_id, name, description, price, cost, stock,
			min_stock, max_stock, unit, image_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		product.ProductID, product.UserID, product.CategoryID, product.Name, product.Description,
		product.Price, product.Cost, product.Stock, product.MinStock, product.MaxStock,
		product.Unit, product.ImageURL,
		product.CreatedAt, product.CreatedBy, product.LastUpdatedAt, product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.db(ctx).QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	d := toDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) ListProductsByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY name;`
	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating product rows: %w", err)
	}
	return products, nil
}

// UpdateProduct persists catalog fields. Stock is intentionally excluded;
// UpdateProductStock is the only write path for the running counter.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, cost = $6,
			min_stock = $7, max_stock = $8, unit = $9, image_url = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE product_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		product.ProductID, product.CategoryID, product.Name, product.Description,
		product.Price, product.Cost, product.MinStock, product.MaxStock,
		product.Unit, product.ImageURL,
		product.LastUpdatedAt, product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) UpdateProductStock(ctx context.Context, productID string, newStock int64, updatedBy string) error {
	query := `
		UPDATE products
		SET stock = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE product_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, productID, newStock, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
