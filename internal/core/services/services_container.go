package services

import (
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.StockMovementRepo, repos.TxManager)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Alert = NewAlertService(repos.AlertRepo)
	container.StockMovement = NewStockMovementService(repos.StockMovementRepo, repos.ProductRepo, repos.TxManager, cfg)

	// The two reconciliation workflows share the product, movement, goal and
	// alert repositories plus the transaction manager.
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo, repos.StockMovementRepo, repos.GoalRepo, repos.AlertRepo, repos.TxManager, cfg)
	container.Production = NewProductionService(repos.ProductionRepo, repos.ProductRepo, repos.StockMovementRepo, repos.GoalRepo, repos.AlertRepo, repos.TxManager, cfg)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
