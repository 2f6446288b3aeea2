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
	"github.com/fieldlog/farm_manager_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func toDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		ProductID:     m.ProductID,
		UserID:        m.UserID,
		CustomerID:    m.CustomerID,
		Quantity:      m.Quantity,
		SaleDate:      m.SaleDate,
		TotalPrice:    m.TotalPrice,
		UnitPrice:     m.UnitPrice,
		Unit:          m.Unit,
		Discount:      m.Discount,
		Status:        domain.SaleStatus(m.Status),
		PaymentMethod: m.PaymentMethod,
		Observations:  m.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const saleColumns = `sale_id, product_id, user_id, customer_id, quantity, sale_date, total_price,
	unit_price, unit, discount, status, payment_method, observations,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	var customerID *string
	err := row.Scan(
		&m.SaleID, &m.ProductID, &m.UserID, &customerID, &m.Quantity, &m.SaleDate,
		&m.TotalPrice, &m.UnitPrice, &m.Unit, &m.Discount, &m.Status,
		&m.PaymentMethod, &m.Observations,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if customerID != nil {
		m.CustomerID = *customerID
	}
	return m, err
}

// nullableString maps empty strings to NULL for optional reference columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (sale_id, product_id, user_id, customer_id, quantity, sale_date, total_price,
			unit_price, unit, discount, status, payment_method, observations,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		sale.SaleID, sale.ProductID, sale.UserID, nullableString(sale.CustomerID),
		sale.Quantity, sale.SaleDate, sale.TotalPrice, sale.UnitPrice, sale.Unit,
		sale.Discount, string(sale.Status), sale.PaymentMethod, sale.Observations,
		sale.CreatedAt, sale.CreatedBy, sale.LastUpdatedAt, sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSale(r.db(ctx).QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	d := toDomainSale(m)
	return &d, nil
}

// ListSalesByUser pages newest-first over the (created_at, sale_id) keyset.
func (r *PgxSaleRepository) ListSalesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1`
	args := []any{userID}

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, sale_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, sale_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, toDomainSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed while iterating sale rows: %w", err)
	}

	var returnedToken *string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.SaleID)
		returnedToken = &token
	}
	return sales, returnedToken, nil
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = $2, sale_date = $3, status = $4, payment_method = $5, observations = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE sale_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		sale.SaleID, nullableString(sale.CustomerID), sale.SaleDate, string(sale.Status),
		sale.PaymentMethod, sale.Observations, sale.LastUpdatedAt, sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
