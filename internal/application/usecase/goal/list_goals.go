// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID    uuid.UUID
	UserEmail string // Recipient for reached alerts; empty skips them.
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals       []*entity.GoalWithProgress
	SavedAmount decimal.Decimal
}

// ListGoalsUseCase lists goals with savings progress derived from the ledger.
type ListGoalsUseCase struct {
	goalRepo     adapter.GoalRepository
	ledgerRepo   adapter.LedgerRepository
	emailService adapter.EmailService // Optional; nil disables alerts.
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	ledgerRepo adapter.LedgerRepository,
	emailService adapter.EmailService,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:     goalRepo,
		ledgerRepo:   ledgerRepo,
		emailService: emailService,
	}
}

// Execute lists the user's goals with derived progress.
//
// Progress is the lifetime net of savings-category entries: expense-kind
// savings entries are contributions, income-kind ones are withdrawals.
// Reaching a goal with alerts enabled queues a one-time email.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	entries, err := uc.ledgerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	saved := savedAmount(entries)

	output := &ListGoalsOutput{
		Goals:       make([]*entity.GoalWithProgress, len(goals)),
		SavedAmount: saved,
	}

	for i, goal := range goals {
		reached := saved.GreaterThanOrEqual(goal.TargetAmount)
		output.Goals[i] = &entity.GoalWithProgress{
			Goal:        goal,
			SavedAmount: saved,
			Reached:     reached,
		}

		if reached {
			uc.maybeQueueReachedAlert(ctx, input, goal, saved)
		}
	}

	return output, nil
}

// savedAmount derives total savings from savings-category ledger entries.
func savedAmount(entries []*entity.LedgerEntry) decimal.Decimal {
	saved := decimal.Zero
	for _, entry := range entries {
		if entry.Category != entity.CategorySavings {
			continue
		}
		if entry.Kind == entity.EntryKindIncome {
			saved = saved.Sub(entry.Amount)
		} else {
			saved = saved.Add(entry.Amount)
		}
	}
	return saved
}

// maybeQueueReachedAlert queues the goal-reached email once per goal.
// Best-effort: failures are logged, never returned.
func (uc *ListGoalsUseCase) maybeQueueReachedAlert(ctx context.Context, input ListGoalsInput, goal *entity.Goal, saved decimal.Decimal) {
	if uc.emailService == nil || input.UserEmail == "" {
		return
	}
	if !goal.AlertOnReach || goal.NotifiedAt != nil {
		return
	}

	err := uc.emailService.QueueGoalReachedEmail(ctx, adapter.QueueGoalReachedInput{
		UserEmail:    input.UserEmail,
		GoalName:     goal.Name,
		TargetAmount: goal.TargetAmount.StringFixed(2),
		SavedAmount:  saved.StringFixed(2),
	})
	if err != nil {
		slog.Warn("Failed to queue goal reached email", "goal_id", goal.ID, "error", err)
		return
	}

	now := time.Now().UTC()
	goal.NotifiedAt = &now
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		slog.Warn("Failed to record goal notification", "goal_id", goal.ID, "error", err)
	}
}
