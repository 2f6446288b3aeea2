package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/platform/config"
)

type stockMovementService struct {
	BaseService
	movementRepo portsrepo.StockMovementRepository
	productRepo  portsrepo.ProductRepositoryFacade
	txManager    portsrepo.TransactionManager
	cfg          *config.Config
}

// NewStockMovementService creates a new stockMovementService.
func NewStockMovementService(movementRepo portsrepo.StockMovementRepository, productRepo portsrepo.ProductRepositoryFacade, txManager portsrepo.TransactionManager, cfg *config.Config) portssvc.StockMovementSvcFacade {
	return &stockMovementService{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		cfg:          cfg,
	}
}

var _ portssvc.StockMovementSvcFacade = (*stockMovementService)(nil)

// AddStockMovement appends a manual ledger entry and moves the product's
// running stock accordingly, inside one transaction.
func (s *stockMovementService) AddStockMovement(ctx context.Context, req dto.AddStockMovementRequest, userID string) (*domain.StockMovement, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	movement := domain.StockMovement{
		MovementID: uuid.NewString(),
		ProductID:  req.ProductID,
		UserID:     userID,
		Type:       domain.MovementType(req.Type),
		Quantity:   req.Quantity,
		Date:       req.Date,
		Reason:     req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	newStock := product.Stock
	if movement.Type == domain.MovementInput {
		newStock += movement.Quantity
	} else {
		newStock -= movement.Quantity
	}
	if newStock < 0 && s.cfg.RejectNegativeStock {
		return nil, fmt.Errorf("%w: product %s has stock %d, movement removes %d", apperrors.ErrInsufficientStock, product.ProductID, product.Stock, movement.Quantity)
	}

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.movementRepo.SaveStockMovement(txCtx, movement); err != nil {
			return fmt.Errorf("failed to save stock movement: %w", err)
		}
		if err := s.productRepo.UpdateProductStock(txCtx, product.ProductID, newStock, userID); err != nil {
			return fmt.Errorf("failed to update product stock: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add stock movement", slog.String("product_id", req.ProductID))
		return nil, err
	}

	return &movement, nil
}

// ListStockMovements returns the ledger history for a product the user owns.
func (s *stockMovementService) ListStockMovements(ctx context.Context, productID string, userID string) ([]domain.StockMovement, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return s.movementRepo.ListStockMovementsByProduct(ctx, productID)
}
