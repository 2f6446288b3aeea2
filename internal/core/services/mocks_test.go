package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
)

// passthroughTxManager satisfies TransactionManager by running the function
// directly. The workflow tests assert on the repository calls made inside the
// callback, not on transaction mechanics.
type passthroughTxManager struct{}

func (passthroughTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Sale), returnedNextToken, args.Error(2)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProductStock(ctx context.Context, productID string, newStock int64, updatedBy string) error {
	args := m.Called(ctx, productID, newStock, updatedBy)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock StockMovementRepository ---

type MockStockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.StockMovementRepository = (*MockStockMovementRepository)(nil)

func (m *MockStockMovementRepository) SaveStockMovement(ctx context.Context, movement domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) ListStockMovementsByProduct(ctx context.Context, productID string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) DeleteStockMovementsByProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock GoalRepository ---

type MockGoalRepository struct {
	mock.Mock
}

var _ portsrepo.GoalRepositoryFacade = (*MockGoalRepository)(nil)

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) ApplyGoalProgress(ctx context.Context, progress domain.GoalProgress, updatedBy string, now time.Time) error {
	args := m.Called(ctx, progress, updatedBy, now)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

// --- Mock AlertRepository ---

type MockAlertRepository struct {
	mock.Mock
}

var _ portsrepo.AlertRepository = (*MockAlertRepository)(nil)

func (m *MockAlertRepository) SaveAlert(ctx context.Context, alert domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) ListAlertsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Alert, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Alert), returnedNextToken, args.Error(2)
}

func (m *MockAlertRepository) MarkAlertRead(ctx context.Context, alertID string, read bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, alertID, read, updatedBy, now)
	return args.Error(0)
}

// --- Mock ProductionRepository ---

type MockProductionRepository struct {
	mock.Mock
}

var _ portsrepo.ProductionRepository = (*MockProductionRepository)(nil)

func (m *MockProductionRepository) SaveProduction(ctx context.Context, production domain.Production) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockProductionRepository) UpdateProduction(ctx context.Context, production domain.Production) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockProductionRepository) DeleteProduction(ctx context.Context, productionID string) error {
	args := m.Called(ctx, productionID)
	return args.Error(0)
}

func (m *MockProductionRepository) FindProductionByID(ctx context.Context, productionID string) (*domain.Production, error) {
	args := m.Called(ctx, productionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Production), args.Error(1)
}

func (m *MockProductionRepository) ListProductionsByUser(ctx context.Context, userID string) ([]domain.Production, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Production), args.Error(1)
}
