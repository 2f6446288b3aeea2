package services

import (
	"context"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	"github.com/fieldlog/farm_manager_app/internal/dto"
)

// CategorySvcFacade manages product categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string, userID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, userID string) error
}

// CustomerSvcFacade manages customers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string, userID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string, userID string) error
}

// ProductSvcFacade manages the product catalog. DeleteProduct also removes the
// product's stock-movement history.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string, userID string) (*domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string, userID string) error
}

// StockMovementSvcFacade manages manual ledger entries and history listing.
type StockMovementSvcFacade interface {
	AddStockMovement(ctx context.Context, req dto.AddStockMovementRequest, userID string) (*domain.StockMovement, error)
	ListStockMovements(ctx context.Context, productID string, userID string) ([]domain.StockMovement, error)
}
