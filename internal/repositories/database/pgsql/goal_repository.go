package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	"github.com/fieldlog/farm_manager_app/internal/models"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		ProductID:    m.ProductID,
		UserID:       m.UserID,
		Description:  m.Description,
		Type:         domain.GoalType(m.Type),
		Status:       domain.GoalStatus(m.Status),
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		StartDate:    m.StartDate,
		Deadline:     m.Deadline,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const goalColumns = `goal_id, product_id, user_id, description, type, status, target_value, current_value,
	start_date, deadline, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID, &m.ProductID, &m.UserID, &m.Description, &m.Type, &m.Status,
		&m.TargetValue, &m.CurrentValue, &m.StartDate, &m.Deadline,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		INSERT INTO goals (goal_id, product_id, user_id, description, type, status, target_value, current_value,
			start_date, deadline, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		goal.GoalID, goal.ProductID, goal.UserID, goal.Description, string(goal.Type), string(goal.Status),
		goal.TargetValue, goal.CurrentValue, goal.StartDate, goal.Deadline,
		goal.CreatedAt, goal.CreatedBy, goal.LastUpdatedAt, goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`
	m, err := scanGoal(r.db(ctx).QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}
	d := toDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at;`
	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET description = $2, status = $3, target_value = $4, deadline = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE goal_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		goal.GoalID, goal.Description, string(goal.Status), goal.TargetValue, goal.Deadline,
		goal.LastUpdatedAt, goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyGoalProgress persists one evaluator result. The current value and the
// done transition land in the same statement, and done goals are excluded in
// the predicate so the workflows never regress an achieved goal.
func (r *PgxGoalRepository) ApplyGoalProgress(ctx context.Context, progress domain.GoalProgress, updatedBy string, now time.Time) error {
	query := `
		UPDATE goals
		SET current_value = $2,
			status = CASE WHEN $3 THEN 'done' ELSE status END,
			last_updated_at = $4, last_updated_by = $5
		WHERE goal_id = $1 AND status <> 'done';
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		progress.GoalID, progress.NewCurrentValue, progress.NewlyAchieved, now, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to apply goal progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
