package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/middleware"
)

// productionHandler handles HTTP requests related to production batches.
type productionHandler struct {
	productionService portssvc.ProductionSvcFacade
}

func newProductionHandler(ps portssvc.ProductionSvcFacade) *productionHandler {
	return &productionHandler{productionService: ps}
}

// registerProductionRoutes registers routes related to productions.
func registerProductionRoutes(rg *gin.RouterGroup, productionService portssvc.ProductionSvcFacade) {
	h := newProductionHandler(productionService)

	productions := rg.Group("/productions")
	{
		productions.POST("", h.createProduction)
		productions.GET("", h.listProductions)
		productions.GET("/:id", h.getProduction)
		productions.PUT("/:id", h.updateProduction)
		productions.DELETE("/:id", h.deleteProduction)
	}
}

// createProduction godoc
// @Summary Plan a production batch
// @Tags productions
// @Accept json
// @Produce json
// @Param production body dto.CreateProductionRequest true "Batch details"
// @Success 201 {object} dto.ProductionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /productions [post]
func (h *productionHandler) createProduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	production, err := h.productionService.CreateProduction(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create production")
		return
	}

	logger.Info("Production created", slog.String("production_id", production.ProductionID))
	c.JSON(http.StatusCreated, dto.ToProductionResponse(production))
}

// getProduction godoc
// @Summary Get a production batch by ID
// @Tags productions
// @Produce json
// @Param id path string true "Production ID"
// @Success 200 {object} dto.ProductionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productions/{id} [get]
func (h *productionHandler) getProduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	production, err := h.productionService.GetProductionByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve production")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductionResponse(production))
}

// listProductions godoc
// @Summary List production batches
// @Tags productions
// @Produce json
// @Success 200 {array} dto.ProductionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /productions [get]
func (h *productionHandler) listProductions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	productions, err := h.productionService.ListProductions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list productions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductionResponse(productions))
}

// updateProduction godoc
// @Summary Update a production batch
// @Description Applies a partial update. When the patch carries
// @Description quantityProduced, the same transaction appends an input stock
// @Description movement, raises the product's stock, advances matching
// @Description production goals and raises alerts for goals that become done.
// @Description A quantityProduced equal to the batch target also marks the
// @Description batch harvested.
// @Tags productions
// @Accept json
// @Produce json
// @Param id path string true "Production ID"
// @Param production body dto.UpdateProductionRequest true "Fields to update"
// @Success 200 {object} dto.ProductionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productions/{id} [put]
func (h *productionHandler) updateProduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	production, err := h.productionService.UpdateProduction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update production")
		return
	}

	logger.Info("Production updated", slog.String("production_id", production.ProductionID))
	c.JSON(http.StatusOK, dto.ToProductionResponse(production))
}

// deleteProduction godoc
// @Summary Delete a production batch
// @Tags productions
// @Produce json
// @Param id path string true "Production ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /productions/{id} [delete]
func (h *productionHandler) deleteProduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.productionService.DeleteProduction(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete production")
		return
	}
	c.Status(http.StatusNoContent)
}
