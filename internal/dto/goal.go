package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal. New goals start
// with currentValue 0 and status in_progress.
type CreateGoalRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" binding:"required,oneof=sales production"`
	TargetValue decimal.Decimal `json:"targetValue" binding:"positivedecimal"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	Deadline    time.Time       `json:"deadline" binding:"required"`
}

// UpdateGoalRequest enumerates the goal fields a user may edit directly.
// CurrentValue and the done transition are owned by the reconciliation
// workflows and are not settable here.
type UpdateGoalRequest struct {
	Description *string          `json:"description"`
	Status      *string          `json:"status" binding:"omitempty,oneof=in_progress active inactive"`
	TargetValue *decimal.Decimal `json:"targetValue"`
	Deadline    *time.Time       `json:"deadline"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID       string          `json:"goalID"`
	ProductID    string          `json:"productID"`
	Description  string          `json:"description,omitempty"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	StartDate    time.Time       `json:"startDate"`
	Deadline     time.Time       `json:"deadline"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:       g.GoalID,
		ProductID:    g.ProductID,
		Description:  g.Description,
		Type:         string(g.Type),
		Status:       string(g.Status),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		StartDate:    g.StartDate,
		Deadline:     g.Deadline,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.LastUpdatedAt,
	}
}

// ToListGoalResponse converts a slice of goals.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
