package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	CategoryRepo      CategoryRepository
	CustomerRepo      CustomerRepository
	ProductRepo       ProductRepositoryFacade
	SaleRepo          SaleRepositoryFacade
	ProductionRepo    ProductionRepository
	GoalRepo          GoalRepositoryFacade
	AlertRepo         AlertRepository
	StockMovementRepo StockMovementRepository
	TxManager         TransactionManager
}
