package domain

import "github.com/shopspring/decimal"

// Product is a farm product tracked in the catalog. Stock is the running
// counter adjusted by sales (decrement) and production events (increment);
// the movement history lives in StockMovement rows.
type Product struct {
	ProductID   string
	UserID      string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // sale price per unit
	Cost        decimal.Decimal
	Stock       int64
	MinStock    *int64
	MaxStock    *int64
	Unit        string
	ImageURL    string
	AuditFields
}
