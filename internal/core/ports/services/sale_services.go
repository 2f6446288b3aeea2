package services

import (
	"context"

	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	"github.com/fieldlog/farm_manager_app/internal/dto"
)

// SaleSvcFacade manages sales. RecordSale is the reconciliation workflow:
// besides persisting the sale it appends the output stock movement, adjusts
// the product's stock, advances matching sales goals and raises alerts for
// goals that become done, all inside one storage transaction.
type SaleSvcFacade interface {
	RecordSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string, userID string) (*domain.Sale, error)
	ListSales(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Sale, *string, error)

	// UpdateSale applies administrative edits; it never re-runs reconciliation.
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, userID string) (*domain.Sale, error)
	DeleteSale(ctx context.Context, saleID string, userID string) error
}

// ProductionSvcFacade manages production batches. UpdateProduction is the
// production-side reconciliation workflow (derived harvested status, stock
// increment, production goals, alerts).
type ProductionSvcFacade interface {
	CreateProduction(ctx context.Context, req dto.CreateProductionRequest, userID string) (*domain.Production, error)
	GetProductionByID(ctx context.Context, productionID string, userID string) (*domain.Production, error)
	ListProductions(ctx context.Context, userID string) ([]domain.Production, error)
	UpdateProduction(ctx context.Context, productionID string, req dto.UpdateProductionRequest, userID string) (*domain.Production, error)
	DeleteProduction(ctx context.Context, productionID string, userID string) error
}

// GoalSvcFacade manages goals in isolation; progress updates come from the
// sale/production workflows, not from here.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, goalID string, userID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string, userID string) error
}

// AlertSvcFacade lists alerts and marks them read.
type AlertSvcFacade interface {
	ListAlerts(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Alert, *string, error)
	MarkAlertRead(ctx context.Context, alertID string, read bool, userID string) error
}
