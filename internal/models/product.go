package models

import "github.com/shopspring/decimal"

// Product mirrors the products table. Stock is the running counter; movement
// history is kept in stock_movements.
type Product struct {
	ProductID   string          `db:"product_id"`
	UserID      string          `db:"user_id"`
	CategoryID  string          `db:"category_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Cost        decimal.Decimal `db:"cost"`
	Stock       int64           `db:"stock"`
	MinStock    *int64          `db:"min_stock"`
	MaxStock    *int64          `db:"max_stock"`
	Unit        string          `db:"unit"`
	ImageURL    string          `db:"image_url"`
	AuditFields
}
