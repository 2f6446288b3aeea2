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

type PgxProductionRepository struct {
	BaseRepository
}

func newPgxProductionRepository(pool *pgxpool.Pool) portsrepo.ProductionRepository {
	return &PgxProductionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductionRepository = (*PgxProductionRepository)(nil)

func toDomainProduction(m models.Production) domain.Production {
	return domain.Production{
		ProductionID:     m.ProductionID,
		ProductID:        m.ProductID,
		UserID:           m.UserID,
		Status:           domain.ProductionStatus(m.Status),
		Quantity:         m.Quantity,
		QuantityProduced: m.QuantityProduced,
		Unit:             m.Unit,
		StartDate:        m.StartDate,
		HarvestDate:      m.HarvestDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const productionColumns = `production_id, product_id, user_id, status, quantity, quantity_produced,
	unit, start_date, harvest_date, created_at, created_by, last_updated_at, last_updated_by`

func scanProduction(row pgx.Row) (models.Production, error) {
	var m models.Production
	err := row.Scan(
		&m.ProductionID, &m.ProductID, &m.UserID, &m.Status, &m.Quantity, &m.QuantityProduced,
		&m.Unit, &m.StartDate, &m.HarvestDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductionRepository) SaveProduction(ctx context.Context, production domain.Production) error {
	query := `
		INSERT INTO productions (production_id, product_id, user_id, status, quantity, quantity_produced,
			unit, start_date, harvest_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		production.ProductionID, production.ProductID, production.UserID, string(production.Status),
		production.Quantity, production.QuantityProduced, production.Unit,
		production.StartDate, production.HarvestDate,
		production.CreatedAt, production.CreatedBy, production.LastUpdatedAt, production.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save production: %w", err)
	}
	return nil
}

func (r *PgxProductionRepository) FindProductionByID(ctx context.Context, productionID string) (*domain.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE production_id = $1;`
	m, err := scanProduction(r.db(ctx).QueryRow(ctx, query, productionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find production by ID %s: %w", productionID, err)
	}
	d := toDomainProduction(m)
	return &d, nil
}

func (r *PgxProductionRepository) ListProductionsByUser(ctx context.Context, userID string) ([]domain.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE user_id = $1 ORDER BY start_date DESC;`
	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list productions: %w", err)
	}
	defer rows.Close()

	var productions []domain.Production
	for rows.Next() {
		m, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production row: %w", err)
		}
		productions = append(productions, toDomainProduction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating production rows: %w", err)
	}
	return productions, nil
}

func (r *PgxProductionRepository) UpdateProduction(ctx context.Context, production domain.Production) error {
	query := `
		UPDATE productions
		SET status = $2, quantity = $3, quantity_produced = $4, unit = $5,
			start_date = $6, harvest_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE production_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		production.ProductionID, string(production.Status), production.Quantity,
		production.QuantityProduced, production.Unit, production.StartDate, production.HarvestDate,
		production.LastUpdatedAt, production.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update production: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductionRepository) DeleteProduction(ctx context.Context, productionID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM productions WHERE production_id = $1;`, productionID)
	if err != nil {
		return fmt.Errorf("failed to delete production: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
