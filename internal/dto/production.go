package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

// CreateProductionRequest defines the data needed to plan a production batch.
type CreateProductionRequest struct {
	ProductID   string    `json:"productID" binding:"required"`
	Quantity    int64     `json:"quantity" binding:"required,gt=0"`
	Unit        string    `json:"unit" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	HarvestDate time.Time `json:"harvestDate" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=waiting in_production harvested"`
}

// UpdateProductionRequest enumerates the production fields that may change.
// This is the payload of the reconciliation workflow: a QuantityProduced equal
// to the batch's target forces status=harvested in the persisted patch, and
// the value (cumulative, not a delta) drives the stock and goal updates.
type UpdateProductionRequest struct {
	Status           *string    `json:"status" binding:"omitempty,oneof=waiting in_production harvested"`
	Quantity         *int64     `json:"quantity" binding:"omitempty,gt=0"`
	QuantityProduced *int64     `json:"quantityProduced" binding:"omitempty,gte=0"`
	Unit             *string    `json:"unit"`
	StartDate        *time.Time `json:"startDate"`
	HarvestDate      *time.Time `json:"harvestDate"`
}

// ProductionResponse defines the data returned for a production batch.
type ProductionResponse struct {
	ProductionID     string    `json:"productionID"`
	ProductID        string    `json:"productID"`
	Status           string    `json:"status"`
	Quantity         int64     `json:"quantity"`
	QuantityProduced int64     `json:"quantityProduced"`
	Unit             string    `json:"unit"`
	StartDate        time.Time `json:"startDate"`
	HarvestDate      time.Time `json:"harvestDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ToProductionResponse converts a domain.Production to ProductionResponse.
func ToProductionResponse(p *domain.Production) ProductionResponse {
	return ProductionResponse{
		ProductionID:     p.ProductionID,
		ProductID:        p.ProductID,
		Status:           string(p.Status),
		Quantity:         p.Quantity,
		QuantityProduced: p.QuantityProduced,
		Unit:             p.Unit,
		StartDate:        p.StartDate,
		HarvestDate:      p.HarvestDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.LastUpdatedAt,
	}
}

// ToListProductionResponse converts a slice of productions.
func ToListProductionResponse(productions []domain.Production) []ProductionResponse {
	res := make([]ProductionResponse, len(productions))
	for i := range productions {
		res[i] = ToProductionResponse(&productions[i])
	}
	return res
}
