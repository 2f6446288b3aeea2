package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GoalType selects the metric a goal tracks: revenue for sales goals,
// produced quantity for production goals.
type GoalType string

const (
	GoalSales      GoalType = "sales"
	GoalProduction GoalType = "production"
)

// GoalStatus is the lifecycle state of a goal. Once a goal is done the
// reconciliation workflows never touch it again.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalActive     GoalStatus = "active"
	GoalDone       GoalStatus = "done"
	GoalInactive   GoalStatus = "inactive"
)

// Goal is a per-product target a user tracks. CurrentValue is monotonically
// non-decreasing while the goal is not done.
type Goal struct {
	GoalID       string
	ProductID    string
	UserID       string
	Description  string
	Type         GoalType
	Status       GoalStatus
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	StartDate    time.Time
	Deadline     time.Time
	AuditFields
}

// GoalProgress is one intended goal update produced by EvaluateGoals.
type GoalProgress struct {
	GoalID          string
	NewCurrentValue decimal.Decimal
	NewlyAchieved   bool
}

// EvaluateGoals computes the goal updates a sale or production event implies.
// Only goals matching productID and goalType whose status is not done are
// considered. Reaching the target exactly counts as achieved. Results are
// sorted by goal ID so callers apply side effects in a stable order regardless
// of how the storage layer returned the goals.
func EvaluateGoals(goals []Goal, productID string, goalType GoalType, increment decimal.Decimal) []GoalProgress {
	var updates []GoalProgress
	for _, g := range goals {
		if g.ProductID != productID || g.Type != goalType || g.Status == GoalDone {
			continue
		}
		newValue := g.CurrentValue.Add(increment)
		updates = append(updates, GoalProgress{
			GoalID:          g.GoalID,
			NewCurrentValue: newValue,
			NewlyAchieved:   newValue.GreaterThanOrEqual(g.TargetValue),
		})
	}
	sort.Slice(updates, func(i, j int) bool { return updates[i].GoalID < updates[j].GoalID })
	return updates
}
