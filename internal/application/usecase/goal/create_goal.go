// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 120

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
	AlertOnReach *bool // Optional, defaults to true.
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.Name, input.TargetAmount); err != nil {
		return nil, err
	}

	alertOnReach := true
	if input.AlertOnReach != nil {
		alertOnReach = *input.AlertOnReach
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.TargetAmount,
		input.TargetDate,
		alertOnReach,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// validateGoalFields validates the fields shared between create and update.
func validateGoalFields(name string, targetAmount decimal.Decimal) error {
	if name == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalName,
			"goal name must not be empty",
			domainerror.ErrEmptyGoalName,
		)
	}
	if len(name) > MaxGoalNameLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameTooLong,
			fmt.Sprintf("goal name must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrGoalNameTooLong,
		)
	}
	if !targetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}
