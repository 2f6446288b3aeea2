package repositories

import (
	"context"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSalesByUser retrieves a paginated list of sales, newest first, using
	// token-based pagination. It returns the sales, a token for the next page,
	// and an error.
	ListSalesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data.
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// ProductionRepository persists production batches.
type ProductionRepository interface {
	SaveProduction(ctx context.Context, production domain.Production) error
	FindProductionByID(ctx context.Context, productionID string) (*domain.Production, error)
	ListProductionsByUser(ctx context.Context, userID string) ([]domain.Production, error)
	UpdateProduction(ctx context.Context, production domain.Production) error
	DeleteProduction(ctx context.Context, productionID string) error
}
