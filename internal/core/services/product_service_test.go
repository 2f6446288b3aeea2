package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/core/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockMovementRepo *MockStockMovementRepository
	service          portssvc.ProductSvcFacade
	userID           string
	productID        string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockMovementRepo = new(MockStockMovementRepository)
	suite.service = services.NewProductService(suite.mockProductRepo, suite.mockMovementRepo, passthroughTxManager{})

	suite.userID = uuid.NewString()
	suite.productID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) ownedProduct() *domain.Product {
	return &domain.Product{
		ProductID: suite.productID,
		UserID:    suite.userID,
		Name:      "Free-range eggs",
		Price:     decimal.NewFromInt(3),
		Stock:     40,
		Unit:      "dozen",
	}
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_CascadesMovementHistory() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.ownedProduct(), nil).Once()
	suite.mockMovementRepo.On("DeleteStockMovementsByProduct", ctx, suite.productID).Return(nil).Once()
	suite.mockProductRepo.On("DeleteProduct", ctx, suite.productID).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, suite.productID, suite.userID)

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_MovementDeleteFailureAborts() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.ownedProduct(), nil).Once()
	suite.mockMovementRepo.On("DeleteStockMovementsByProduct", ctx, suite.productID).Return(assertableError{}).Once()

	err := suite.service.DeleteProduct(ctx, suite.productID, suite.userID)

	suite.Require().Error(err)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "DeleteProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_Forbidden() {
	ctx := context.Background()
	foreign := suite.ownedProduct()
	foreign.UserID = uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(foreign, nil).Once()

	err := suite.service.DeleteProduct(ctx, suite.productID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "DeleteStockMovementsByProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_StockIsNotEditable() {
	ctx := context.Background()
	newName := "Organic eggs"

	suite.mockProductRepo.On("FindProductByID", ctx, suite.productID).Return(suite.ownedProduct(), nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		// The running stock survives catalog edits untouched.
		return p.Name == newName && p.Stock == 40
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, suite.productID, dto.UpdateProductRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(40), updated.Stock)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
