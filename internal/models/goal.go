package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal mirrors the goals table.
type Goal struct {
	GoalID       string          `db:"goal_id"`
	ProductID    string          `db:"product_id"`
	UserID       string          `db:"user_id"`
	Description  string          `db:"description"`
	Type         string          `db:"type"`
	Status       string          `db:"status"`
	TargetValue  decimal.Decimal `db:"target_value"`
	CurrentValue decimal.Decimal `db:"current_value"`
	StartDate    time.Time       `db:"start_date"`
	Deadline     time.Time       `db:"deadline"`
	AuditFields
}
