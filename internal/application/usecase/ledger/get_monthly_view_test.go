// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/domain/entity"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

func TestGetMonthlyViewUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	salary := testEntry(entity.EntryKindIncome, "salary", "5000.00", date(2024, time.January, 1), true, nil)
	salary.UserID = userID
	salary.Category = entity.CategoryOther

	oldRent := testEntry(entity.EntryKindExpense, "rent", "1400.00", date(2023, time.January, 1), true, datePtr(2023, time.December, 1))
	oldRent.UserID = userID
	oldRent.Category = entity.CategoryHousing

	rent := testEntry(entity.EntryKindExpense, "rent", "1500.00", date(2024, time.January, 1), true, nil)
	rent.UserID = userID
	rent.Category = entity.CategoryHousing

	tires := testEntry(entity.EntryKindExpense, "tires", "400.00", date(2024, time.March, 15), false, nil)
	tires.UserID = userID
	tires.Category = entity.CategoryTransportation

	repo := newFakeLedgerRepository(salary, oldRent, rent, tires)
	uc := NewGetMonthlyViewUseCase(repo)

	t.Run("derives per-category totals and groups for the month", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthlyViewInput{
			UserID: userID,
			Month:  valueobject.NewMonth(2024, time.March),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Month.Equal(valueobject.NewMonth(2024, time.March)) {
			t.Errorf("expected month 2024-03, got %s", output.Month)
		}

		// salary 5000 - rent 1500 - tires 400
		wantNet := decimal.RequireFromString("3100.00")
		if !output.ActiveTotal.Equal(wantNet) {
			t.Errorf("expected net %s, got %s", wantNet, output.ActiveTotal)
		}

		var housing *CategoryView
		for _, view := range output.Categories {
			if view.Category == entity.CategoryHousing {
				housing = view
			}
		}
		if housing == nil {
			t.Fatal("expected a housing category view")
		}

		if !housing.ActiveTotal.Equal(decimal.RequireFromString("1500.00")) {
			t.Errorf("expected housing active total 1500.00, got %s", housing.ActiveTotal)
		}
		if !housing.LifetimeTotal.Equal(decimal.RequireFromString("2900.00")) {
			t.Errorf("expected housing lifetime total 2900.00, got %s", housing.LifetimeTotal)
		}

		if len(housing.Groups) != 1 {
			t.Fatalf("expected 1 housing group, got %d", len(housing.Groups))
		}
		group := housing.Groups[0]
		if group.Current != rent {
			t.Error("expected the open rent entry to be current")
		}
		if len(group.Historical) != 1 || group.Historical[0] != oldRent {
			t.Error("expected the closed rent entry in history")
		}
	})

	t.Run("categories follow display order", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthlyViewInput{
			UserID: userID,
			Month:  valueobject.AllMonths(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 3 {
			t.Fatalf("expected 3 category views, got %d", len(output.Categories))
		}
		want := []entity.EntryCategory{
			entity.CategoryHousing,
			entity.CategoryTransportation,
			entity.CategoryOther,
		}
		for i, view := range output.Categories {
			if view.Category != want[i] {
				t.Errorf("expected category %s at position %d, got %s", want[i], i, view.Category)
			}
		}
	})

	t.Run("history groups contain only items with predecessors", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthlyViewInput{
			UserID: userID,
			Month:  valueobject.AllMonths(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.HistoryGroups) != 1 {
			t.Fatalf("expected 1 history group, got %d", len(output.HistoryGroups))
		}
		if output.HistoryGroups[0].Key != "rent" {
			t.Errorf("expected history group rent, got %s", output.HistoryGroups[0].Key)
		}
	})

	t.Run("empty ledger yields an empty view", func(t *testing.T) {
		emptyRepo := newFakeLedgerRepository()
		emptyUC := NewGetMonthlyViewUseCase(emptyRepo)

		output, err := emptyUC.Execute(context.Background(), GetMonthlyViewInput{
			UserID: uuid.New(),
			Month:  valueobject.NewMonth(2024, time.March),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 0 || len(output.HistoryGroups) != 0 {
			t.Error("expected no categories or history for an empty ledger")
		}
		if !output.ActiveTotal.IsZero() {
			t.Errorf("expected zero net, got %s", output.ActiveTotal)
		}
	})
}
