package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

// AddStockMovementRequest defines the data for a manual ledger entry.
type AddStockMovementRequest struct {
	ProductID string    `json:"productID" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=input output"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
	Reason    string    `json:"reason"`
}

// StockMovementResponse defines the data returned for a ledger entry.
type StockMovementResponse struct {
	MovementID string    `json:"movementID"`
	ProductID  string    `json:"productID"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToStockMovementResponse converts a domain.StockMovement.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Date:       m.Date,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}

// ToListStockMovementResponse converts a slice of ledger entries.
func ToListStockMovementResponse(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToStockMovementResponse(&movements[i])
	}
	return res
}
