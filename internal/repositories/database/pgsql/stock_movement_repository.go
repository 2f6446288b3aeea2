package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	"github.com/fieldlog/farm_manager_app/internal/models"
)

type PgxStockMovementRepository struct {
	BaseRepository
}

func newPgxStockMovementRepository(pool *pgxpool.Pool) portsrepo.StockMovementRepository {
	return &PgxStockMovementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StockMovementRepository = (*PgxStockMovementRepository)(nil)

func toDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		UserID:     m.UserID,
		Type:       domain.MovementType(m.Type),
		Quantity:   m.Quantity,
		Date:       m.Date,
		Reason:     m.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const stockMovementColumns = `movement_id, product_id, user_id, type, quantity, date, reason,
	created_at, created_by, last_updated_at, last_updated_by`

func scanStockMovement(row pgx.Row) (models.StockMovement, error) {
	var m models.StockMovement
	err := row.Scan(
		&m.MovementID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.Date, &m.Reason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveStockMovement appends one ledger entry. Movements are never updated.
func (r *PgxStockMovementRepository) SaveStockMovement(ctx context.Context, movement domain.StockMovement) error {
	query := `
		INSERT INTO stock_movements (movement_id, product_id, user_id, type, quantity, date, reason,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		movement.MovementID, movement.ProductID, movement.UserID, string(movement.Type),
		movement.Quantity, movement.Date, movement.Reason,
		movement.CreatedAt, movement.CreatedBy, movement.LastUpdatedAt, movement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock movement: %w", err)
	}
	return nil
}

func (r *PgxStockMovementRepository) ListStockMovementsByProduct(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE product_id = $1 ORDER BY date DESC, movement_id DESC;`
	rows, err := r.db(ctx).Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		m, err := scanStockMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		movements = append(movements, toDomainStockMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating stock movement rows: %w", err)
	}
	return movements, nil
}

// DeleteStockMovementsByProduct removes the full history for a product.
// Zero rows is not an error here; a product may have no movements yet.
func (r *PgxStockMovementRepository) DeleteStockMovementsByProduct(ctx context.Context, productID string) error {
	_, err := r.db(ctx).Exec(ctx, `DELETE FROM stock_movements WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete stock movements for product %s: %w", productID, err)
	}
	return nil
}
