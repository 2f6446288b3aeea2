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

type ProductionServiceTestSuite struct {
	suite.Suite
	mockProductionRepo *MockProductionRepository
	mockProductRepo    *MockProductRepository
	mockMovementRepo   *MockStockMovementRepository
	mockGoalRepo       *MockGoalRepository
	mockAlertRepo      *MockAlertRepository
	service            portssvc.ProductionSvcFacade
	userID             string
	productID          string
	productionID       string
}

func (suite *ProductionServiceTestSuite) SetupTest() {
	suite.mockProductionRepo = new(MockProductionRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockMovementRepo = new(MockStockMovementRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockAlertRepo = new(MockAlertRepository)
	suite.service = services.NewProductionService(
		suite.mockProductionRepo,
		suite.mockProductRepo,
		suite.mockMovementRepo,
		suite.mockGoalRepo,
		suite.mockAlertRepo,
		passthroughTxManager{},
		&config.Config{},
	)

	suite.userID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.productionID = uuid.NewString()
}

func (suite *ProductionServiceTestSuite) production(target int64, status domain.ProductionStatus) *domain.Production {
	return &domain.Production{
		ProductionID: suite.productionID,
		ProductID:    suite.productID,
		UserID:       suite.userID,
		Status:       status,
		Quantity:     target,
		Unit:         "kg",
	}
}

func (suite *ProductionServiceTestSuite) TestUpdateProduction_DerivesHarvestedStatus() {
	ctx := context.Background()
	produced := int64(100)
	req := dto.UpdateProductionRequest{QuantityProduced: &produced}

	suite.mockProductionRepo.On("FindProductionByID", ctx, suite.productionID).Return(suite.production(100, domain.ProductionInProduction), nil).Once()
	suite.mockProductionRepo.On("UpdateProduction", ctx, mock.MatchedBy(func(p domain.Production) bool {
		return p.Status == domain.ProductionHarvested && p.QuantityProduced == 100
	})).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.MatchedBy(func(m domain.StockMovement) bool {
		return m.Type == domain.MovementInput && m.Quantity == 100
	})).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(&domain.Product{ProductID: suite.productID, UserID: suite.userID, Stock: 20}, nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(120), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{}, nil).Once()

	updated, err := suite.service.UpdateProduction(ctx, suite.productionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProductionHarvested, updated.Status)
	suite.mockProductionRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductionServiceTestSuite) TestUpdateProduction_ProductionGoalAchieved() {
	ctx := context.Background()
	produced := int64(100)
	req := dto.UpdateProductionRequest{QuantityProduced: &produced}
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		ProductID:    suite.productID,
		UserID:       suite.userID,
		Type:         domain.GoalProduction,
		Status:       domain.GoalInProgress,
		TargetValue:  decimal.NewFromInt(200),
		CurrentValue: decimal.NewFromInt(100),
	}

	suite.mockProductionRepo.On("FindProductionByID", ctx, suite.productionID).Return(suite.production(500, domain.ProductionInProduction), nil).Once()
	suite.mockProductionRepo.On("UpdateProduction", ctx, mock.AnythingOfType("domain.Production")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(&domain.Product{ProductID: suite.productID, UserID: suite.userID, Stock: 0}, nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(100), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.MatchedBy(func(p domain.GoalProgress) bool {
		return p.GoalID == goal.GoalID && p.NewCurrentValue.Equal(decimal.NewFromInt(200)) && p.NewlyAchieved
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAlertRepo.On("SaveAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Type == domain.GoalProduction && a.ProductID == suite.productID
	})).Return(nil).Once()

	_, err := suite.service.UpdateProduction(ctx, suite.productionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertNumberOfCalls(suite.T(), "SaveAlert", 1)
}

func (suite *ProductionServiceTestSuite) TestUpdateProduction_PartialProgressNoAlert() {
	ctx := context.Background()
	produced := int64(10)
	req := dto.UpdateProductionRequest{QuantityProduced: &produced}
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		ProductID:    suite.productID,
		UserID:       suite.userID,
		Type:         domain.GoalProduction,
		Status:       domain.GoalActive,
		TargetValue:  decimal.NewFromInt(200),
		CurrentValue: decimal.Zero,
	}

	suite.mockProductionRepo.On("FindProductionByID", ctx, suite.productionID).Return(suite.production(500, domain.ProductionInProduction), nil).Once()
	suite.mockProductionRepo.On("UpdateProduction", ctx, mock.AnythingOfType("domain.Production")).Return(nil).Once()
	suite.mockMovementRepo.On("SaveStockMovement", ctx, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(&domain.Product{ProductID: suite.productID, UserID: suite.userID, Stock: 5}, nil).Once()
	suite.mockProductRepo.On("UpdateProductStock", ctx, suite.productID, int64(15), suite.userID).Return(nil).Once()
	suite.mockGoalRepo.On("FindGoalsByUserID", ctx, suite.userID).Return([]domain.Goal{goal}, nil).Once()
	suite.mockGoalRepo.On("ApplyGoalProgress", ctx, mock.MatchedBy(func(p domain.GoalProgress) bool {
		return p.NewCurrentValue.Equal(decimal.NewFromInt(10)) && !p.NewlyAchieved
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.UpdateProduction(ctx, suite.productionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "SaveAlert", mock.Anything, mock.Anything)
}

func (suite *ProductionServiceTestSuite) TestUpdateProduction_NoQuantitySkipsReconciliation() {
	ctx := context.Background()
	newStatus := "in_production"
	req := dto.UpdateProductionRequest{Status: &newStatus}

	suite.mockProductionRepo.On("FindProductionByID", ctx, suite.productionID).Return(suite.production(100, domain.ProductionWaiting), nil).Once()
	suite.mockProductionRepo.On("UpdateProduction", ctx, mock.MatchedBy(func(p domain.Production) bool {
		return p.Status == domain.ProductionInProduction
	})).Return(nil).Once()

	_, err := suite.service.UpdateProduction(ctx, suite.productionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveStockMovement", mock.Anything, mock.Anything)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID", mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "FindGoalsByUserID", mock.Anything, mock.Anything)
}

func (suite *ProductionServiceTestSuite) TestUpdateProduction_Forbidden() {
	ctx := context.Background()
	produced := int64(10)
	other := suite.production(100, domain.ProductionWaiting)
	other.UserID = uuid.NewString()

	suite.mockProductionRepo.On("FindProductionByID", ctx, suite.productionID).Return(other, nil).Once()

	_, err := suite.service.UpdateProduction(ctx, suite.productionID, dto.UpdateProductionRequest{QuantityProduced: &produced}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProductionRepo.AssertNotCalled(suite.T(), "UpdateProduction", mock.Anything, mock.Anything)
}

func (suite *ProductionServiceTestSuite) TestCreateProduction_Defaults() {
	ctx := context.Background()
	req := dto.CreateProductionRequest{
		ProductID:   suite.productID,
		Quantity:    50,
		Unit:        "kg",
		StartDate:   time.Now().UTC(),
		HarvestDate: time.Now().UTC().AddDate(0, 3, 0),
	}

	suite.mockProductionRepo.On("SaveProduction", ctx, mock.MatchedBy(func(p domain.Production) bool {
		return p.Status == domain.ProductionWaiting && p.QuantityProduced == 0 && p.Quantity == 50
	})).Return(nil).Once()

	created, err := suite.service.CreateProduction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ProductionWaiting, created.Status)
	suite.mockProductionRepo.AssertExpectations(suite.T())
}

func TestProductionService(t *testing.T) {
	suite.Run(t, new(ProductionServiceTestSuite))
}
