package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest carries everything RecordSale needs. Quantity must be
// positive; TotalPrice is the revenue the sales goals accumulate.
type CreateSaleRequest struct {
	ProductID     string          `json:"productID" binding:"required"`
	CustomerID    string          `json:"customerID"`
	Quantity      int64           `json:"quantity" binding:"required,gt=0"`
	SaleDate      time.Time       `json:"saleDate" binding:"required"`
	TotalPrice    decimal.Decimal `json:"totalPrice" binding:"positivedecimal"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"positivedecimal"`
	Unit          string          `json:"unit" binding:"required"`
	Discount      decimal.Decimal `json:"discount" binding:"nonnegativedecimal"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Observations  string          `json:"observations"`
	Status        string          `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// UpdateSaleRequest enumerates the administrative edits allowed on a sale.
// Quantity and totalPrice are immutable here: changing them would desync the
// stock and goal state written by RecordSale.
type UpdateSaleRequest struct {
	CustomerID    *string    `json:"customerID"`
	SaleDate      *time.Time `json:"saleDate"`
	Status        *string    `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	PaymentMethod *string    `json:"paymentMethod"`
	Observations  *string    `json:"observations"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string          `json:"saleID"`
	ProductID     string          `json:"productID"`
	CustomerID    string          `json:"customerID,omitempty"`
	Quantity      int64           `json:"quantity"`
	SaleDate      time.Time       `json:"saleDate"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Unit          string          `json:"unit"`
	Discount      decimal.Decimal `json:"discount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Observations  string          `json:"observations,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		ProductID:     s.ProductID,
		CustomerID:    s.CustomerID,
		Quantity:      s.Quantity,
		SaleDate:      s.SaleDate,
		TotalPrice:    s.TotalPrice,
		UnitPrice:     s.UnitPrice,
		Unit:          s.Unit,
		Discount:      s.Discount,
		Status:        string(s.Status),
		PaymentMethod: s.PaymentMethod,
		Observations:  s.Observations,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSalesResponse wraps a page of sales with the token for the next page.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a page of sales.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) ListSalesResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: res, NextToken: nextToken}
}
