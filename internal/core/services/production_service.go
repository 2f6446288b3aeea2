package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
	"github.com/fieldlog/farm_manager_app/internal/platform/config"
)

// productionService implements ProductionSvcFacade. UpdateProduction is the
// production-side reconciliation workflow.
type productionService struct {
	BaseService
	productionRepo portsrepo.ProductionRepository
	productRepo    portsrepo.ProductRepositoryFacade
	movementRepo   portsrepo.StockMovementRepository
	goalRepo       portsrepo.GoalRepositoryFacade
	alertRepo      portsrepo.AlertRepository
	txManager      portsrepo.TransactionManager
	cfg            *config.Config
}

// NewProductionService creates a new productionService.
func NewProductionService(
	productionRepo portsrepo.ProductionRepository,
	productRepo portsrepo.ProductRepositoryFacade,
	movementRepo portsrepo.StockMovementRepository,
	goalRepo portsrepo.GoalRepositoryFacade,
	alertRepo portsrepo.AlertRepository,
	txManager portsrepo.TransactionManager,
	cfg *config.Config,
) portssvc.ProductionSvcFacade {
	return &productionService{
		productionRepo: productionRepo,
		productRepo:    productRepo,
		movementRepo:   movementRepo,
		goalRepo:       goalRepo,
		alertRepo:      alertRepo,
		txManager:      txManager,
		cfg:            cfg,
	}
}

var _ portssvc.ProductionSvcFacade = (*productionService)(nil)

func (s *productionService) CreateProduction(ctx context.Context, req dto.CreateProductionRequest, userID string) (*domain.Production, error) {
	status := domain.ProductionWaiting
	if req.Status != "" {
		status = domain.ProductionStatus(req.Status)
	}

	now := time.Now().UTC()
	production := domain.Production{
		ProductionID: uuid.NewString(),
		ProductID:    req.ProductID,
		UserID:       userID,
		Status:       status,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		StartDate:    req.StartDate,
		HarvestDate:  req.HarvestDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productionRepo.SaveProduction(ctx, production); err != nil {
		s.LogError(ctx, err, "Failed to save production")
		return nil, fmt.Errorf("failed to create production: %w", err)
	}
	return &production, nil
}

func (s *productionService) GetProductionByID(ctx context.Context, productionID string, userID string) (*domain.Production, error) {
	production, err := s.productionRepo.FindProductionByID(ctx, productionID)
	if err != nil {
		return nil, err
	}
	if production.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return production, nil
}

func (s *productionService) ListProductions(ctx context.Context, userID string) ([]domain.Production, error) {
	return s.productionRepo.ListProductionsByUser(ctx, userID)
}

// UpdateProduction applies a partial update to a production batch and
// reconciles its side effects when the patch carries quantityProduced:
//  1. the status is forced to harvested when quantityProduced reaches the
//     batch's target quantity, regardless of what the caller sent
//  2. the updated batch is persisted
//  3. an input ledger entry for the produced amount is appended and the
//     product's stock is incremented by the full quantityProduced value
//  4. matching production goals advance by quantityProduced; goals reaching
//     their target are marked done and raise one alert each
//
// Everything runs inside one transaction; any failure rolls the whole update
// back. A patch without quantityProduced skips steps 3 and 4.
func (s *productionService) UpdateProduction(ctx context.Context, productionID string, req dto.UpdateProductionRequest, userID string) (*domain.Production, error) {
	logger := s.GetLogger(ctx)

	production, err := s.GetProductionByID(ctx, productionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		production.Quantity = *req.Quantity
	}
	if req.QuantityProduced != nil {
		production.QuantityProduced = *req.QuantityProduced
	}
	if req.Status != nil {
		production.Status = domain.ProductionStatus(*req.Status)
	}
	if req.Unit != nil {
		production.Unit = *req.Unit
	}
	if req.StartDate != nil {
		production.StartDate = *req.StartDate
	}
	if req.HarvestDate != nil {
		production.HarvestDate = *req.HarvestDate
	}

	// Derived status: reaching the target quantity means the batch is
	// harvested, whatever the caller put in the patch.
	if req.QuantityProduced != nil && production.QuantityProduced == production.Quantity {
		production.Status = domain.ProductionHarvested
	}

	now := time.Now().UTC()
	production.LastUpdatedAt = now
	production.LastUpdatedBy = userID

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.productionRepo.UpdateProduction(txCtx, *production); err != nil {
			return fmt.Errorf("failed to persist production update: %w", err)
		}

		if req.QuantityProduced == nil {
			return nil
		}
		produced := *req.QuantityProduced

		movement := domain.StockMovement{
			MovementID: uuid.NewString(),
			ProductID:  production.ProductID,
			UserID:     userID,
			Type:       domain.MovementInput,
			Quantity:   produced,
			Date:       now,
			Reason:     fmt.Sprintf("production %s", production.ProductionID),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.movementRepo.SaveStockMovement(txCtx, movement); err != nil {
			return fmt.Errorf("failed to append stock movement: %w", err)
		}

		product, err := s.productRepo.FindProductByID(txCtx, production.ProductID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found while updating production, skipping stock adjustment",
				slog.String("product_id", production.ProductID), slog.String("production_id", production.ProductionID))
		case err != nil:
			return fmt.Errorf("failed to load product: %w", err)
		default:
			newStock := product.Stock + produced
			if err := s.productRepo.UpdateProductStock(txCtx, product.ProductID, newStock, userID); err != nil {
				return fmt.Errorf("failed to update product stock: %w", err)
			}
		}

		goals, err := s.goalRepo.FindGoalsByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		updates := domain.EvaluateGoals(goals, production.ProductID, domain.GoalProduction, decimal.NewFromInt(produced))
		for _, update := range updates {
			if err := s.goalRepo.ApplyGoalProgress(txCtx, update, userID, now); err != nil {
				return fmt.Errorf("failed to apply goal progress: %w", err)
			}
			if !update.NewlyAchieved {
				continue
			}
			alert := domain.Alert{
				AlertID:   uuid.NewString(),
				UserID:    userID,
				ProductID: production.ProductID,
				Type:      domain.GoalProduction,
				Message:   fmt.Sprintf("Goal achieved for product %s", production.ProductID),
				Read:      false,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			}
			if err := s.alertRepo.SaveAlert(txCtx, alert); err != nil {
				return fmt.Errorf("failed to save goal achievement alert: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "UpdateProduction failed", slog.String("production_id", productionID))
		return nil, err
	}

	logger.Info("Production updated", slog.String("production_id", production.ProductionID), slog.String("status", string(production.Status)))
	return production, nil
}

func (s *productionService) DeleteProduction(ctx context.Context, productionID string, userID string) error {
	if _, err := s.GetProductionByID(ctx, productionID, userID); err != nil {
		return err
	}
	if err := s.productionRepo.DeleteProduction(ctx, productionID); err != nil {
		s.LogError(ctx, err, "Failed to delete production", slog.String("production_id", productionID))
		return fmt.Errorf("failed to delete production: %w", err)
	}
	return nil
}
