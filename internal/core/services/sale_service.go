package services

import (
	"context"
	"errors"
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

// saleService implements SaleSvcFacade. RecordSale is the sales-side
// reconciliation workflow: sale record, stock ledger entry, product stock
// decrement, goal progression and achievement alerts, all inside one
// transaction.
type saleService struct {
	BaseService
	saleRepo     portsrepo.SaleRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	movementRepo portsrepo.StockMovementRepository
	goalRepo     portsrepo.GoalRepositoryFacade
	alertRepo    portsrepo.AlertRepository
	txManager    portsrepo.TransactionManager
	cfg          *config.Config
}

// NewSaleService creates a new saleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	movementRepo portsrepo.StockMovementRepository,
	goalRepo portsrepo.GoalRepositoryFacade,
	alertRepo portsrepo.AlertRepository,
	txManager portsrepo.TransactionManager,
	cfg *config.Config,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		goalRepo:     goalRepo,
		alertRepo:    alertRepo,
		txManager:    txManager,
		cfg:          cfg,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale persists a sale and reconciles the stock, goal and alert state
// it implies. The steps run in a fixed order inside a single transaction:
//  1. persist the sale record
//  2. append the output entry to the stock ledger
//  3. load the product and persist its decremented stock
//  4. load the user's goals, advance matching sales goals by the sale's
//     total price, and mark those reaching their target as done
//  5. raise one alert per newly achieved goal
//
// Any failure rolls the whole operation back. A missing product is not a
// failure: the stock adjustment is skipped with a warning and goal
// progression still runs.
func (s *saleService) RecordSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	logger := s.GetLogger(ctx)

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		ProductID:     req.ProductID,
		UserID:        userID,
		CustomerID:    req.CustomerID,
		Quantity:      req.Quantity,
		SaleDate:      req.SaleDate,
		TotalPrice:    req.TotalPrice,
		UnitPrice:     req.UnitPrice,
		Unit:          req.Unit,
		Discount:      req.Discount,
		Status:        domain.SaleStatus(req.Status),
		PaymentMethod: req.PaymentMethod,
		Observations:  req.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.saleRepo.SaveSale(txCtx, sale); err != nil {
			return fmt.Errorf("failed to persist sale: %w", err)
		}

		movement := domain.StockMovement{
			MovementID: uuid.NewString(),
			ProductID:  sale.ProductID,
			UserID:     userID,
			Type:       domain.MovementOutput,
			Quantity:   sale.Quantity,
			Date:       sale.SaleDate,
			Reason:     fmt.Sprintf("sale %s", sale.SaleID),
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

		product, err := s.productRepo.FindProductByID(txCtx, sale.ProductID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found while recording sale, skipping stock adjustment",
				slog.String("product_id", sale.ProductID), slog.String("sale_id", sale.SaleID))
		case err != nil:
			return fmt.Errorf("failed to load product: %w", err)
		default:
			newStock := product.Stock - sale.Quantity
			if newStock < 0 && s.cfg.RejectNegativeStock {
				return fmt.Errorf("%w: product %s has stock %d, sale needs %d", apperrors.ErrInsufficientStock, product.ProductID, product.Stock, sale.Quantity)
			}
			if err := s.productRepo.UpdateProductStock(txCtx, product.ProductID, newStock, userID); err != nil {
				return fmt.Errorf("failed to update product stock: %w", err)
			}
		}

		goals, err := s.goalRepo.FindGoalsByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		updates := domain.EvaluateGoals(goals, sale.ProductID, domain.GoalSales, sale.TotalPrice)
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
				ProductID: sale.ProductID,
				Type:      domain.GoalSales,
				Message:   fmt.Sprintf("Goal achieved for product %s", sale.ProductID),
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
		s.LogError(ctx, err, "RecordSale failed", slog.String("product_id", req.ProductID))
		return nil, err
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("product_id", sale.ProductID), slog.Int64("quantity", sale.Quantity))
	return &sale, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string, userID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.saleRepo.ListSalesByUser(ctx, userID, limit, nextToken)
}

// UpdateSale applies administrative edits. Quantity and totalPrice are not
// editable here; changing them would desync the stock and goal state written
// by RecordSale.
func (s *saleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, userID string) (*domain.Sale, error) {
	sale, err := s.GetSaleByID(ctx, saleID, userID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		sale.CustomerID = *req.CustomerID
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	if req.Status != nil {
		sale.Status = domain.SaleStatus(*req.Status)
	}
	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}
	if req.Observations != nil {
		sale.Observations = *req.Observations
	}
	sale.LastUpdatedAt = time.Now().UTC()
	sale.LastUpdatedBy = userID

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}
	return sale, nil
}

// DeleteSale removes a sale record. It does not compensate the stock or goal
// effects of the original RecordSale.
func (s *saleService) DeleteSale(ctx context.Context, saleID string, userID string) error {
	if _, err := s.GetSaleByID(ctx, saleID, userID); err != nil {
		return err
	}
	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}
