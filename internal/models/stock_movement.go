package models

import "time"

// StockMovement mirrors the stock_movements table (append-only ledger).
type StockMovement struct {
	MovementID string    `db:"movement_id"`
	ProductID  string    `db:"product_id"`
	UserID     string    `db:"user_id"`
	Type       string    `db:"type"`
	Quantity   int64     `db:"quantity"`
	Date       time.Time `db:"date"`
	Reason     string    `db:"reason"`
	AuditFields
}
