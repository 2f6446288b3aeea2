package domain

import "time"

// ProductionStatus is the lifecycle state of a production batch.
type ProductionStatus string

const (
	ProductionWaiting      ProductionStatus = "waiting"
	ProductionInProduction ProductionStatus = "in_production"
	ProductionHarvested    ProductionStatus = "harvested"
)

// Production is a planned batch of a product being grown/produced.
// QuantityProduced is cumulative; the batch transitions to harvested exactly
// when it reaches Quantity.
type Production struct {
	ProductionID     string
	ProductID        string
	UserID           string
	Status           ProductionStatus
	Quantity         int64 // target
	QuantityProduced int64
	Unit             string
	StartDate        time.Time
	HarvestDate      time.Time
	AuditFields
}
