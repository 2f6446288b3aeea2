package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/middleware"
)

// stockMovementHandler handles the manual side of the stock ledger.
type stockMovementHandler struct {
	stockMovementService portssvc.StockMovementSvcFacade
}

func newStockMovementHandler(ss portssvc.StockMovementSvcFacade) *stockMovementHandler {
	return &stockMovementHandler{stockMovementService: ss}
}

// registerStockMovementRoutes registers the ledger routes. The history
// listing hangs off the owning product.
func registerStockMovementRoutes(rg *gin.RouterGroup, stockMovementService portssvc.StockMovementSvcFacade) {
	h := newStockMovementHandler(stockMovementService)

	rg.POST("/stock-movements", h.addStockMovement)
	rg.GET("/products/:id/movements", h.listStockMovements)
}

// addStockMovement godoc
// @Summary Add a manual stock movement
// @Description Appends a ledger entry and adjusts the product's stock level.
// @Tags stock-movements
// @Accept json
// @Produce json
// @Param movement body dto.AddStockMovementRequest true "Movement details"
// @Success 201 {object} dto.StockMovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /stock-movements [post]
func (h *stockMovementHandler) addStockMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddStockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movement, err := h.stockMovementService.AddStockMovement(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add stock movement")
		return
	}

	logger.Info("Stock movement added",
		slog.String("movement_id", movement.MovementID),
		slog.String("product_id", movement.ProductID))
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

// listStockMovements godoc
// @Summary List a product's stock movements
// @Description Retrieves the movement history for a product, newest first.
// @Tags stock-movements
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/movements [get]
func (h *stockMovementHandler) listStockMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movements, err := h.stockMovementService.ListStockMovements(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockMovementResponse(movements))
}
