package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	"github.com/fieldlog/farm_manager_app/internal/models"
	"github.com/fieldlog/farm_manager_app/internal/utils/pagination"
)

type PgxAlertRepository struct {
	BaseRepository
}

func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepository {
	return &PgxAlertRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AlertRepository = (*PgxAlertRepository)(nil)

func toDomainAlert(m models.Alert) domain.Alert {
	return domain.Alert{
		AlertID:   m.AlertID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Type:      domain.GoalType(m.Type),
		Message:   m.Message,
		Read:      m.Read,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const alertColumns = `alert_id, user_id, product_id, type, message, read,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAlert(row pgx.Row) (models.Alert, error) {
	var m models.Alert
	err := row.Scan(
		&m.AlertID, &m.UserID, &m.ProductID, &m.Type, &m.Message, &m.Read,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.Alert) error {
	query := `
		INSERT INTO alerts (alert_id, user_id, product_id, type, message, read,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		alert.AlertID, alert.UserID, alert.ProductID, string(alert.Type), alert.Message, alert.Read,
		alert.CreatedAt, alert.CreatedBy, alert.LastUpdatedAt, alert.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

// ListAlertsByUser pages newest-first over the (created_at, alert_id) keyset.
func (r *PgxAlertRepository) ListAlertsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Alert, *string, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE user_id = $1`
	args := []any{userID}

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, alert_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, alert_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		m, err := scanAlert(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, toDomainAlert(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed while iterating alert rows: %w", err)
	}

	var returnedToken *string
	if len(alerts) > limit {
		alerts = alerts[:limit]
		last := alerts[len(alerts)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.AlertID)
		returnedToken = &token
	}
	return alerts, returnedToken, nil
}

// MarkAlertRead flips the read flag; the updatedBy filter doubles as the
// ownership check.
func (r *PgxAlertRepository) MarkAlertRead(ctx context.Context, alertID string, read bool, updatedBy string, now time.Time) error {
	query := `
		UPDATE alerts
		SET read = $2, last_updated_at = $3, last_updated_by = $4
		WHERE alert_id = $1 AND user_id = $4;
	`
	tag, err := r.db(ctx).Exec(ctx, query, alertID, read, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
