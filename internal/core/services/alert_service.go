package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
)

type alertService struct {
	BaseService
	alertRepo portsrepo.AlertRepository
}

// NewAlertService creates a new alertService. Alerts are only created by the
// reconciliation workflows; this service lists them and marks them read.
func NewAlertService(alertRepo portsrepo.AlertRepository) portssvc.AlertSvcFacade {
	return &alertService{alertRepo: alertRepo}
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

func (s *alertService) ListAlerts(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Alert, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.alertRepo.ListAlertsByUser(ctx, userID, limit, nextToken)
}

func (s *alertService) MarkAlertRead(ctx context.Context, alertID string, read bool, userID string) error {
	now := time.Now().UTC()
	if err := s.alertRepo.MarkAlertRead(ctx, alertID, read, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark alert read")
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	return nil
}
