package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fieldlog/farm_manager_app/internal/apperrors"
	"github.com/fieldlog/farm_manager_app/internal/core/domain"
	portsrepo "github.com/fieldlog/farm_manager_app/internal/core/ports/repositories"
	portssvc "github.com/fieldlog/farm_manager_app/internal/core/ports/services"
	"github.com/fieldlog/farm_manager_app/internal/dto"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goalService. Goal progress is advanced by the
// sale/production workflows, not through this service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		ProductID:    req.ProductID,
		UserID:       userID,
		Description:  req.Description,
		Type:         domain.GoalType(req.Type),
		Status:       domain.GoalInProgress,
		TargetValue:  req.TargetValue,
		CurrentValue: decimal.Zero,
		StartDate:    req.StartDate,
		Deadline:     req.Deadline,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal")
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string, userID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.goalRepo.FindGoalsByUserID(ctx, userID)
}

// UpdateGoal applies user edits. CurrentValue and the done transition are
// owned by the reconciliation workflows and cannot be set here.
func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	goal, err := s.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Status != nil {
		goal.Status = domain.GoalStatus(*req.Status)
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}
	goal.LastUpdatedAt = time.Now().UTC()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal")
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	if _, err := s.GetGoalByID(ctx, goalID, userID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal")
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
