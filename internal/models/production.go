package models

import "time"

// Production mirrors the productions table.
type Production struct {
	ProductionID     string    `db:"production_id"`
	ProductID        string    `db:"product_id"`
	UserID           string    `db:"user_id"`
	Status           string    `db:"status"`
	Quantity         int64     `db:"quantity"`
	QuantityProduced int64     `db:"quantity_produced"`
	Unit             string    `db:"unit"`
	StartDate        time.Time `db:"start_date"`
	HarvestDate      time.Time `db:"harvest_date"`
	AuditFields
}
