// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID          uuid.UUID
	UserID          uuid.UUID
	Name            *string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	ClearTargetDate bool
	AlertOnReach    *bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedGoal,
			"not authorized to update this goal",
			domainerror.ErrNotAuthorizedToModifyGoal,
		)
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
		// Raising the target re-arms the reached alert.
		goal.NotifiedAt = nil
	}
	if input.ClearTargetDate {
		goal.TargetDate = nil
	} else if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.AlertOnReach != nil {
		goal.AlertOnReach = *input.AlertOnReach
	}

	if err := validateGoalFields(goal.Name, goal.TargetAmount); err != nil {
		return nil, err
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
