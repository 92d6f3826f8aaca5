// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// GetMonthlyViewInput represents the input for the monthly ledger view.
type GetMonthlyViewInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
}

// CategoryView represents one category's slice of the monthly view.
type CategoryView struct {
	Category      entity.EntryCategory
	ActiveTotal   decimal.Decimal // Entries active in the selected month.
	LifetimeTotal decimal.Decimal // Every entry ever recorded in the category.
	Groups        []*DescriptionGroup
}

// GetMonthlyViewOutput is the derived view model for the expenses page:
// entries grouped per category and description, per-category active and
// lifetime totals, the overall net for the selected month, and the logical
// items that carry rate-change history.
type GetMonthlyViewOutput struct {
	Month         valueobject.Month
	Categories    []*CategoryView
	ActiveTotal   decimal.Decimal // Net (income - expense) over active entries.
	HistoryGroups []*DescriptionGroup
}

// GetMonthlyViewUseCase derives the month view from the user's full ledger.
type GetMonthlyViewUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetMonthlyViewUseCase creates a new GetMonthlyViewUseCase instance.
func NewGetMonthlyViewUseCase(ledgerRepo adapter.LedgerRepository) *GetMonthlyViewUseCase {
	return &GetMonthlyViewUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute fetches the ledger once and derives the view in memory.
func (uc *GetMonthlyViewUseCase) Execute(ctx context.Context, input GetMonthlyViewInput) (*GetMonthlyViewOutput, error) {
	entries, err := uc.ledgerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	byCategory := make(map[entity.EntryCategory][]*entity.LedgerEntry)
	for _, entry := range entries {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	output := &GetMonthlyViewOutput{
		Month:       input.Month,
		ActiveTotal: NetActiveTotal(entries, input.Month),
	}

	for _, category := range entity.EntryCategories {
		categoryEntries := byCategory[category]
		if len(categoryEntries) == 0 {
			continue
		}

		groups := GroupByDescription(categoryEntries)
		output.Categories = append(output.Categories, &CategoryView{
			Category:      category,
			ActiveTotal:   ActiveTotal(categoryEntries, input.Month),
			LifetimeTotal: LifetimeTotal(categoryEntries),
			Groups:        groups,
		})

		for _, group := range groups {
			if len(group.Historical) > 0 {
				output.HistoryGroups = append(output.HistoryGroups, group)
			}
		}
	}

	return output, nil
}
