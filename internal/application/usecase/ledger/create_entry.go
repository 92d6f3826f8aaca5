// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for entry descriptions.
const MaxDescriptionLength = 255

// CreateEntryInput represents the input for ledger entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	Kind        entity.EntryKind
	Category    entity.EntryCategory
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	EndDate     *time.Time
	IsRecurring bool
}

// CreateEntryOutput represents the output of ledger entry creation.
type CreateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// CreateEntryUseCase handles ledger entry creation logic.
type CreateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(ledgerRepo adapter.LedgerRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the ledger entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateEntryFields(input.Kind, input.Category, input.Description, input.Amount); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryDate,
			"entry date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	if input.EndDate != nil {
		if !input.IsRecurring {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEndDateOnOneOff,
				"one-off entries cannot have an end date",
				domainerror.ErrEndDateOnOneOff,
			)
		}
		// End boundaries live on the monthly grid.
		normalized := valueobject.MonthOf(*input.EndDate).FirstDay()
		if valueobject.MonthOf(normalized).Before(valueobject.MonthOf(input.Date)) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEndDateBeforeStart,
				"end date precedes start date",
				domainerror.ErrEndDateBeforeStart,
			)
		}
		input.EndDate = &normalized
	}

	entry := entity.NewLedgerEntry(
		input.UserID,
		input.Kind,
		input.Category,
		input.Description,
		input.Amount,
		input.Date,
		input.IsRecurring,
	)
	entry.EndDate = input.EndDate

	if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return &CreateEntryOutput{Entry: entry}, nil
}

// validateEntryFields validates the fields shared between create and update.
func validateEntryFields(kind entity.EntryKind, category entity.EntryCategory, description string, amount decimal.Decimal) error {
	if !isValidEntryKind(kind) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryKind,
			"entry kind must be 'expense' or 'income'",
			domainerror.ErrInvalidEntryKind,
		)
	}

	if !entity.IsValidEntryCategory(category) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryCategory,
			"unknown entry category",
			domainerror.ErrInvalidEntryCategory,
		)
	}

	if description == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be empty",
			domainerror.ErrEmptyDescription,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	return nil
}

// isValidEntryKind validates the entry kind.
func isValidEntryKind(kind entity.EntryKind) bool {
	return kind == entity.EntryKindExpense || kind == entity.EntryKindIncome
}
