package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors the sales table.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	ProductID     string          `db:"product_id"`
	UserID        string          `db:"user_id"`
	CustomerID    string          `db:"customer_id"` // nullable in DB, empty string in Go
	Quantity      int64           `db:"quantity"`
	SaleDate      time.Time       `db:"sale_date"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Unit          string          `db:"unit"`
	Discount      decimal.Decimal `db:"discount"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	Observations  string          `db:"observations"`
	AuditFields
}
