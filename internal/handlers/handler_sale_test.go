package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/middleware"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) RecordSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) GetSaleByID(ctx context.Context, saleID string, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sales, token, args.Error(2)
}
func (m *MockSaleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) DeleteSale(ctx context.Context, saleID string, userID string) error {
	args := m.Called(ctx, saleID, userID)
	return args.Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	jwtSecret       string
}

func (suite *SaleHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSaleService = new(MockSaleService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerSaleRoutes(v1, suite.mockSaleService)
}

func (suite *SaleHandlerTestSuite) newSaleRequestBody() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ProductID:     uuid.NewString(),
		Quantity:      3,
		SaleDate:      time.Now().UTC().Truncate(time.Second),
		TotalPrice:    decimal.NewFromInt(45),
		UnitPrice:     decimal.NewFromInt(15),
		Unit:          "kg",
		PaymentMethod: "cash",
		Status:        "completed",
	}
}

// --- Test Cases ---

func (suite *SaleHandlerTestSuite) TestRecordSale_Success() {
	userID := uuid.NewString()
	reqBody := suite.newSaleRequestBody()

	expectedSale := &domain.Sale{
		SaleID:        uuid.NewString(),
		ProductID:     reqBody.ProductID,
		UserID:        userID,
		Quantity:      reqBody.Quantity,
		SaleDate:      reqBody.SaleDate,
		TotalPrice:    reqBody.TotalPrice,
		UnitPrice:     reqBody.UnitPrice,
		Unit:          reqBody.Unit,
		Status:        domain.SaleCompleted,
		PaymentMethod: reqBody.PaymentMethod,
	}

	suite.mockSaleService.On("RecordSale",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateSaleRequest) bool {
			return r.ProductID == reqBody.ProductID && r.Quantity == reqBody.Quantity
		}),
		userID, // user ID must come from the token, not the body
	).Return(expectedSale, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SaleResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expectedSale.SaleID, resp.SaleID)
	suite.Equal(expectedSale.ProductID, resp.ProductID)

	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestRecordSale_InsufficientStockConflict() {
	userID := uuid.NewString()
	reqBody := suite.newSaleRequestBody()

	suite.mockSaleService.On("RecordSale", mock.Anything, mock.Anything, userID).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestRecordSale_MissingTokenUnauthorized() {
	body, _ := json.Marshal(suite.newSaleRequestBody())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "RecordSale")
}

func (suite *SaleHandlerTestSuite) TestRecordSale_InvalidBodyRejected() {
	userID := uuid.NewString()

	// Quantity 0 fails the gt=0 binding.
	reqBody := suite.newSaleRequestBody()
	reqBody.Quantity = 0

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "RecordSale")
}

func (suite *SaleHandlerTestSuite) TestListSales_PassesPaginationParams() {
	userID := uuid.NewString()
	inToken := "page-2-token"
	outToken := "page-3-token"

	sales := []domain.Sale{{
		SaleID:    uuid.NewString(),
		ProductID: uuid.NewString(),
		UserID:    userID,
		Quantity:  1,
		Status:    domain.SaleCompleted,
	}}

	suite.mockSaleService.On("ListSales",
		mock.Anything,
		userID,
		5,
		mock.MatchedBy(func(t *string) bool { return t != nil && *t == inToken }),
	).Return(sales, &outToken, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales?limit=5&nextToken="+inToken, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListSalesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Sales, 1)
	suite.NotNil(resp.NextToken)
	suite.Equal(outToken, *resp.NextToken)

	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestGetSale_ForbiddenForOtherOwner() {
	userID := uuid.NewString()
	saleID := uuid.NewString()

	suite.mockSaleService.On("GetSaleByID", mock.Anything, saleID, userID).
		Return(nil, apperrors.ErrForbidden).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/"+saleID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
