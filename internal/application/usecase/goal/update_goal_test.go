// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

func assertGoalCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected a goal error, got %v", err)
	}
	if goalErr.Code != code {
		t.Errorf("expected code %s, got %s", code, goalErr.Code)
	}
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("applies partial updates", func(t *testing.T) {
		goal := entity.NewGoal(userID, "Emergency fund", decimal.RequireFromString("10000.00"), nil, false)
		repo := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		name := "Rainy day fund"
		alert := true
		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       goal.ID,
			UserID:       userID,
			Name:         &name,
			AlertOnReach: &alert,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Name != "Rainy day fund" {
			t.Errorf("expected updated name, got %q", output.Goal.Name)
		}
		if !output.Goal.AlertOnReach {
			t.Error("expected alerts enabled")
		}
		if !output.Goal.TargetAmount.Equal(decimal.RequireFromString("10000.00")) {
			t.Error("expected target amount unchanged")
		}
		if repo.updateCalls != 1 {
			t.Errorf("expected 1 update, got %d", repo.updateCalls)
		}
	})

	t.Run("changing the target re-arms the reached alert", func(t *testing.T) {
		goal := entity.NewGoal(userID, "Emergency fund", decimal.RequireFromString("10000.00"), nil, true)
		notified := time.Now().UTC()
		goal.NotifiedAt = &notified
		repo := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		target := decimal.RequireFromString("15000.00")
		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       goal.ID,
			UserID:       userID,
			TargetAmount: &target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.NotifiedAt != nil {
			t.Error("expected NotifiedAt to be cleared when the target changes")
		}
	})

	t.Run("clears the target date", func(t *testing.T) {
		targetDate := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
		goal := entity.NewGoal(userID, "Emergency fund", decimal.RequireFromString("10000.00"), &targetDate, false)
		repo := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:          goal.ID,
			UserID:          userID,
			ClearTargetDate: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.TargetDate != nil {
			t.Error("expected target date to be cleared")
		}
	})

	t.Run("rejects an unknown goal", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewUpdateGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: uuid.New(),
			UserID: userID,
		})

		assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
	})

	t.Run("rejects another user's goal", func(t *testing.T) {
		goal := entity.NewGoal(uuid.New(), "Emergency fund", decimal.RequireFromString("10000.00"), nil, false)
		repo := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: goal.ID,
			UserID: userID,
		})

		assertGoalCode(t, err, domainerror.ErrCodeNotAuthorizedGoal)
		if repo.updateCalls != 0 {
			t.Error("expected no update for an unauthorized goal")
		}
	})

	t.Run("rejects an invalid updated amount", func(t *testing.T) {
		goal := entity.NewGoal(userID, "Emergency fund", decimal.RequireFromString("10000.00"), nil, false)
		repo := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		uc := NewUpdateGoalUseCase(repo)

		target := decimal.Zero
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       goal.ID,
			UserID:       userID,
			TargetAmount: &target,
		})
		if err == nil {
			t.Fatal("expected an error for a zero target amount")
		}
		if repo.updateCalls != 0 {
			t.Error("expected no update on validation failure")
		}
	})
}
