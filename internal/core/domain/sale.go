package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale record.
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// Sale records a completed or pending sale of a product. Created once by the
// RecordSale workflow; administrative edits do not re-run reconciliation.
type Sale struct {
	SaleID        string
	ProductID     string
	UserID        string
	CustomerID    string // optional, empty when the sale has no registered buyer
	Quantity      int64
	SaleDate      time.Time
	TotalPrice    decimal.Decimal
	UnitPrice     decimal.Decimal
	Unit          string
	Discount      decimal.Decimal
	Status        SaleStatus
	PaymentMethod string
	Observations  string
	AuditFields
}
