// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// fakeGoalRepository holds goals in memory in insertion order.
type fakeGoalRepository struct {
	goals       []*entity.Goal
	updateCalls int
}

func (r *fakeGoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *fakeGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, goal := range r.goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	r.updateCalls++
	for i, existing := range r.goals {
		if existing.ID == goal.ID {
			r.goals[i] = goal
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i, goal := range r.goals {
		if goal.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// fakeEntryLister serves a fixed set of ledger entries.
type fakeEntryLister struct {
	entries []*entity.LedgerEntry
}

func (r *fakeEntryLister) Create(ctx context.Context, entry *entity.LedgerEntry) error { return nil }

func (r *fakeEntryLister) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeEntryLister) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}

func (r *fakeEntryLister) Update(ctx context.Context, entry *entity.LedgerEntry) error { return nil }

func (r *fakeEntryLister) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// fakeEmailService records queued goal alerts.
type fakeEmailService struct {
	goalReachedAlerts []adapter.QueueGoalReachedInput
}

func (s *fakeEmailService) QueueRateChangeNotice(ctx context.Context, input adapter.QueueRateChangeNoticeInput) error {
	return nil
}

func (s *fakeEmailService) QueueGoalReachedEmail(ctx context.Context, input adapter.QueueGoalReachedInput) error {
	s.goalReachedAlerts = append(s.goalReachedAlerts, input)
	return nil
}

func savingsEntry(userID uuid.UUID, kind entity.EntryKind, amount string) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Category:    entity.CategorySavings,
		Description: "brokerage",
		Amount:      decimal.RequireFromString(amount),
		Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: false,
	}
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("derives savings progress from savings entries", func(t *testing.T) {
		goals := &fakeGoalRepository{}
		goals.goals = append(goals.goals, entity.NewGoal(userID, "Emergency fund", decimal.RequireFromString("10000.00"), nil, false))

		entries := &fakeEntryLister{entries: []*entity.LedgerEntry{
			savingsEntry(userID, entity.EntryKindExpense, "6000.00"),
			savingsEntry(userID, entity.EntryKindExpense, "3000.00"),
			savingsEntry(userID, entity.EntryKindIncome, "1000.00"),
			{
				ID:          uuid.New(),
				UserID:      userID,
				Kind:        entity.EntryKindExpense,
				Category:    entity.CategoryFood,
				Description: "groceries",
				Amount:      decimal.RequireFromString("500.00"),
				Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		}}

		uc := NewListGoalsUseCase(goals, entries, nil)
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 6000 + 3000 contributed, 1000 withdrawn; food is ignored.
		want := decimal.RequireFromString("8000.00")
		if !output.SavedAmount.Equal(want) {
			t.Errorf("expected saved amount %s, got %s", want, output.SavedAmount)
		}

		if len(output.Goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(output.Goals))
		}
		progress := output.Goals[0]
		if progress.Reached {
			t.Error("expected goal not reached at 8000 of 10000")
		}
		if !progress.SavedAmount.Equal(want) {
			t.Errorf("expected per-goal saved amount %s, got %s", want, progress.SavedAmount)
		}
	})

	t.Run("reached goal with alerts queues a one-time email", func(t *testing.T) {
		goal := entity.NewGoal(userID, "Starter fund", decimal.RequireFromString("5000.00"), nil, true)
		goals := &fakeGoalRepository{goals: []*entity.Goal{goal}}

		entries := &fakeEntryLister{entries: []*entity.LedgerEntry{
			savingsEntry(userID, entity.EntryKindExpense, "5000.00"),
		}}
		emails := &fakeEmailService{}

		uc := NewListGoalsUseCase(goals, entries, emails)
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID, UserEmail: "user@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goals[0].Reached {
			t.Error("expected goal reached when saved equals target")
		}
		if len(emails.goalReachedAlerts) != 1 {
			t.Fatalf("expected 1 queued alert, got %d", len(emails.goalReachedAlerts))
		}
		alert := emails.goalReachedAlerts[0]
		if alert.GoalName != "Starter fund" || alert.TargetAmount != "5000.00" || alert.SavedAmount != "5000.00" {
			t.Errorf("unexpected alert contents: %+v", alert)
		}
		if goal.NotifiedAt == nil {
			t.Error("expected NotifiedAt to be recorded after queueing")
		}

		// A second listing must not queue again.
		if _, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID, UserEmail: "user@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emails.goalReachedAlerts) != 1 {
			t.Errorf("expected alert to be queued once, got %d", len(emails.goalReachedAlerts))
		}
	})

	t.Run("reached goal without alerts stays silent", func(t *testing.T) {
		goal := entity.NewGoal(userID, "Quiet fund", decimal.RequireFromString("1000.00"), nil, false)
		goals := &fakeGoalRepository{goals: []*entity.Goal{goal}}
		entries := &fakeEntryLister{entries: []*entity.LedgerEntry{
			savingsEntry(userID, entity.EntryKindExpense, "2000.00"),
		}}
		emails := &fakeEmailService{}

		uc := NewListGoalsUseCase(goals, entries, emails)
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID, UserEmail: "user@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goals[0].Reached {
			t.Error("expected goal reached")
		}
		if len(emails.goalReachedAlerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(emails.goalReachedAlerts))
		}
		if goal.NotifiedAt != nil {
			t.Error("expected NotifiedAt to stay unset")
		}
	})

	t.Run("no goals yields an empty list with the saved amount", func(t *testing.T) {
		goals := &fakeGoalRepository{}
		entries := &fakeEntryLister{entries: []*entity.LedgerEntry{
			savingsEntry(userID, entity.EntryKindExpense, "100.00"),
		}}

		uc := NewListGoalsUseCase(goals, entries, nil)
		output, err := uc.Execute(context.Background(), ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Goals) != 0 {
			t.Errorf("expected no goals, got %d", len(output.Goals))
		}
		if !output.SavedAmount.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected saved amount 100.00, got %s", output.SavedAmount)
		}
	})
}
