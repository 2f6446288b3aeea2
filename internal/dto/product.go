package dto

import (
	"time"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"positivedecimal"`
	Cost        decimal.Decimal `json:"cost" binding:"nonnegativedecimal"`
	Stock       int64           `json:"stock" binding:"gte=0"`
	MinStock    *int64          `json:"minStock"`
	MaxStock    *int64          `json:"maxStock"`
	Unit        string          `json:"unit" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageURL"`
}

// UpdateProductRequest enumerates the product fields that may change.
// Stock is deliberately absent: the running stock only moves through the
// sale/production workflows and manual stock movements.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	CategoryID  *string          `json:"categoryID"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	MinStock    *int64           `json:"minStock"`
	MaxStock    *int64           `json:"maxStock"`
	Unit        *string          `json:"unit"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"imageURL"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	CategoryID  string          `json:"categoryID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int64           `json:"stock"`
	MinStock    *int64          `json:"minStock,omitempty"`
	MaxStock    *int64          `json:"maxStock,omitempty"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"imageURL,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		MaxStock:    p.MaxStock,
		Unit:        p.Unit,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of products.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
