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
)

type productService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	movementRepo portsrepo.StockMovementRepository
	txManager    portsrepo.TransactionManager
}

// NewProductService creates a new productService. The movement repository is
// needed because deleting a product cascades to its stock-movement history.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, movementRepo portsrepo.StockMovementRepository, txManager portsrepo.TransactionManager) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
		Unit:        req.Unit,
		ImageURL:    req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.productRepo.ListProductsByUser(ctx, userID)
}

// UpdateProduct applies catalog edits. The running stock level is not
// editable here: it only moves through the sale/production workflows and
// manual stock movements.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.MinStock != nil {
		product.MinStock = req.MinStock
	}
	if req.MaxStock != nil {
		product.MaxStock = req.MaxStock
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product together with its stock-movement history,
// inside one transaction.
func (s *productService) DeleteProduct(ctx context.Context, productID string, userID string) error {
	if _, err := s.GetProductByID(ctx, productID, userID); err != nil {
		return err
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.movementRepo.DeleteStockMovementsByProduct(txCtx, productID); err != nil {
			return fmt.Errorf("failed to remove stock movements for product: %w", err)
		}
		if err := s.productRepo.DeleteProduct(txCtx, productID); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return err
	}

	s.LogInfo(ctx, "Product deleted with its movement history", slog.String("product_id", productID))
	return nil
}
