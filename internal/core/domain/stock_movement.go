package domain

import "time"

// MovementType distinguishes stock entering or leaving inventory.
type MovementType string

const (
	MovementInput  MovementType = "input"
	MovementOutput MovementType = "output"
)

// StockMovement is one append-only ledger entry for a product. The running
// stock level lives on the product; movements are the history behind it and
// are removed together with their product.
type StockMovement struct {
	MovementID string
	ProductID  string
	UserID     string
	Type       MovementType
	Quantity   int64
	Date       time.Time
	Reason     string
	AuditFields
}
