package repositories

import (
	"context"
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

// GoalReader defines read operations for goal data.
type GoalReader interface {
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// FindGoalsByUserID returns every goal owned by the user; the workflows
	// filter and order via domain.EvaluateGoals.
	FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data.
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// ApplyGoalProgress persists one evaluator result: the new current value
	// and, when newly achieved, the transition to done, in a single update.
	ApplyGoalProgress(ctx context.Context, progress domain.GoalProgress, updatedBy string, now time.Time) error

	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}

// AlertRepository persists goal-achievement alerts.
type AlertRepository interface {
	SaveAlert(ctx context.Context, alert domain.Alert) error

	// ListAlertsByUser retrieves a paginated list of alerts, newest first,
	// using token-based pagination.
	ListAlertsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Alert, *string, error)

	// MarkAlertRead flips the read flag on an alert.
	MarkAlertRead(ctx context.Context, alertID string, read bool, updatedBy string, now time.Time) error
}

// StockMovementRepository persists the append-only stock ledger.
type StockMovementRepository interface {
	SaveStockMovement(ctx context.Context, movement domain.StockMovement) error
	ListStockMovementsByProduct(ctx context.Context, productID string) ([]domain.StockMovement, error)

	// DeleteStockMovementsByProduct removes the movement history when its
	// product is removed (cascade).
	DeleteStockMovementsByProduct(ctx context.Context, productID string) error
}
