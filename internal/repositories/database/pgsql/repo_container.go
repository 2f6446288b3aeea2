package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		ProductRepo:       newPgxProductRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		ProductionRepo:    newPgxProductionRepository(dbPool),
		GoalRepo:          newPgxGoalRepository(dbPool),
		AlertRepo:         newPgxAlertRepository(dbPool),
		StockMovementRepo: newPgxStockMovementRepository(dbPool),
		TxManager:         NewPgxTransactionManager(dbPool),
	}
}
