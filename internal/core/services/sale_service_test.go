package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/core/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/platform/config"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockProductRepo  *MockProductRepository
	mockMovementRepo *MockStockMovementRepository
	mockGoalRepo     *MockGoalRepository
	mockAlertRepo    *MockAlertRepository
	cfg              *config.Config
	service          portssvc.SaleSvcFacade
	userID           string
	productID        string
	callLog          []string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockMovementRepo = new(MockStockMovementRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockAlertRepo = new(MockAlertRepository)
	suite.cfg = &config.Config{}
	suite.service = services.NewSaleService(
		suite.mockSaleRepo,
		suite.mockProductRepo,
		suite.mockMovementRepo,
		suite.mockGoalRepo,
		suite.mockAlertRepo,
		passthroughTxManager{},
		suite.cfg,
	)

	suite.userID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.callLog = nil
}

func (suite *SaleServiceTestSuite) newSaleRequest(quantity int64, totalPrice int64) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ProductID:     suite.productID,
		Quantity:      quantity,
		SaleDate:      time.Now().UTC(),
		TotalPrice:    decimal.NewFromInt(totalPrice),
		UnitPrice:     decimal.NewFromInt(totalPrice).Div(decimal.NewFromInt(quantity)),
		Unit:          "kg",
		PaymentMethod: "cash",
		Status:        "completed",
	}
}

func (suite *SaleServiceTestSuite) product(stock int64) *domain.Product {
	return &domain.Product{
		ProductID: suite.productID,
		UserID:    suite.userID,
		Name:      "Raw milk",
		Stock:     stock,
		Unit:      "kg",
	}
}

func (suite *SaleServiceTestSuite) goal(current, target int64, status domain.GoalStatus) domain.Goal {
	return domain.Goal{
		GoalID:       uuid.NewString(),
		ProductID:    suite.productID,
		UserID:       suite.userID,
		Type:         domain.GoalSales,
		Status:       status,
		TargetValue:  decimal.NewFromInt(target),
		CurrentValue: decimal.NewFromInt(current),
	}
}

func (suite *SaleServiceTestSuite) logCall(name string) func(mock.Arguments) {
	return func(mock.Arguments) {
		suite.callLog = append(suite.callLog, name)
	}
}

func (suite *SaleServiceTestSuite) TestRecordSale_CallOrder() {
	ctx := context.Background()
	req := suite.newSaleRequest(2, 50)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Run(suite.logCall("SaveSale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Run(suite.logCall("SaveStockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Run(suite.logCall("FindProductByID")).Return(suite.product(10), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(8), suite.userID).Run(suite.logCall("UpdateProductStock")).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Run(suite.logCall("FindGoalsByUserID")).Return([]domain.Goal{}, nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal([]string{"SaveSale", "SaveStockMovement", "FindProductByID", "UpdateProductStock", "FindGoalsByUserID"}, suite.callLog)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRecordSale_GoalAchievedAtExactTarget() {
	ctx := context.Background()
	req := suite.newSaleRequest(1, 100)
	goal := suite.goal(100, 200, domain.GoalInProgress)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(10), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(9), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.MatchedBy(func(p domain.GoalProgress) bool {
		return p.GoalID == goal.GoalID && p.NewCurrentValue.Equal(decimal.NewFromInt(200)) && p.NewlyAchieved
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAlertRepo.On("SaveAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Type == domain.GoalSales && a.ProductID == suite.productID && !a.Read
	})).Return(nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertNumberOfCalls(suite.T(), "SaveAlert", 1)
}

func (suite *SaleServiceTestSuite) TestRecordSale_PartialProgressNoAlert() {
	ctx := context.Background()
	req := suite.newSaleRequest(1, 50)
	goal := suite.goal(100, 200, domain.GoalInProgress)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(10), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(9), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.MatchedBy(func(p domain.GoalProgress) bool {
		return p.NewCurrentValue.Equal(decimal.NewFromInt(150)) && !p.NewlyAchieved
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "SaveAlert", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_DoneGoalsAreFrozen() {
	ctx := context.Background()
	req := suite.newSaleRequest(1, 500)
	doneGoal := suite.goal(200, 200, domain.GoalDone)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(10), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(9), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{doneGoal}, nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "ApplyGoalProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "SaveAlert", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_GoalUpdateFailureSuppressesAlert() {
	ctx := context.Background()
	req := suite.newSaleRequest(1, 100)
	goal := suite.goal(100, 200, domain.GoalInProgress)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(10), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(9), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.Anything, suite.userID, mock.AnythingOfType("time.Time")).Return(assertableError{}).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "SaveAlert", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_MissingProductSkipsStockAdjustment() {
	ctx := context.Background()
	req := suite.newSaleRequest(2, 50)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{}, nil).Once()

	sale, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProductStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRecordSale_RejectsNegativeStockWhenConfigured() {
	suite.cfg.RejectNegativeStock = true
	ctx := context.Background()
	req := suite.newSaleRequest(5, 50)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(3), nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProductStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "FindGoalsByUserID", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestRecordSale_AllowsNegativeStockByDefault() {
	ctx := context.Background()
	req := suite.newSaleRequest(5, 50)

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.product(3), nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(-2), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{}, nil).Once()

	_, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRecordSale_EndToEnd() {
	ctx := context.Background()
	suite.productID = "p1"
	req := suite.newSaleRequest(2, 10)
	goal := domain.Goal{
		GoalID:       "g1",
		ProductID:    "p1",
		UserID:       suite.userID,
		Type:         domain.GoalSales,
		Status:       domain.GoalInProgress,
		TargetValue:  decimal.NewFromInt(200),
		CurrentValue: decimal.NewFromInt(190),
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.MatchedBy(func(m domain.StockMovement) bool {
		return m.Type == domain.MovementOutput && m.Quantity == 2 && m.ProductID == "p1"
	})).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, "p1").Return(&domain.Product{ProductID: "p1", UserID: suite.userID, Stock: 10}, nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, "p1", int64(8), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.MatchedBy(func(p domain.GoalProgress) bool {
		return p.GoalID == "g1" && p.NewCurrentValue.Equal(decimal.NewFromInt(200)) && p.NewlyAchieved
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAlertRepo.On("SaveAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Message == "Goal achieved for product p1" && a.Type == domain.GoalSales
	})).Return(nil).Once()

	sale, err := suite.service.RecordSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.NotEmpty(sale.SaleID)
	suite.Equal(suite.userID, sale.CreatedBy)
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestUpdateSale_AdministrativeEditsOnly() {
	ctx := context.Background()
	saleID := uuid.NewString()
	existing := &domain.Sale{
		SaleID:    saleID,
		ProductID: suite.productID,
		UserID:    suite.userID,
		Quantity:  4,
		Status:    domain.SalePending,
	}
	newStatus := "completed"

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(existing, nil).Once()
	suite.mockSaleRepo.On("UpdateSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.Status == domain.SaleCompleted && s.Quantity == 4
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSale(ctx, saleID, dto.UpdateSaleRequest{Status: &newStatus}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.SaleCompleted, updated.Status)
	// No reconciliation on edits.
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveStockMovement", mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "FindGoalsByUserID", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_Forbidden() {
	ctx := context.Background()
	saleID := uuid.NewString()
	otherOwner := &domain.Sale{SaleID: saleID, UserID: uuid.NewString()}

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(otherOwner, nil).Once()

	_, err := suite.service.GetSaleByID(ctx, saleID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// assertableError is a sentinel error for failure-injection tests.
type assertableError struct{}

func (assertableError) Error() string { return "injected repository failure" }

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
