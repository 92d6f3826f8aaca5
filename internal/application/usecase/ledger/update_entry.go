// Package ledger contains the expense ledger use cases.
package ledger

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
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// UpdateEntryInput represents the input for ledger entry update.
type UpdateEntryInput struct {
	EntryID      uuid.UUID
	UserID       uuid.UUID
	Kind         *entity.EntryKind
	Category     *entity.EntryCategory
	Description  *string
	Amount       *decimal.Decimal
	Date         *time.Time
	EndDate      *time.Time
	ClearEndDate bool // Set to true to reopen a closed recurring entry.
	IsRecurring  *bool
}

// UpdateEntryOutput represents the output of ledger entry update.
type UpdateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// UpdateEntryUseCase handles ledger entry update logic.
type UpdateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(ledgerRepo adapter.LedgerRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the ledger entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to update this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if input.Kind != nil {
		entry.Kind = *input.Kind
	}
	if input.Category != nil {
		entry.Category = *input.Category
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.IsRecurring != nil {
		entry.IsRecurring = *input.IsRecurring
	}

	if input.ClearEndDate {
		entry.EndDate = nil
	} else if input.EndDate != nil {
		normalized := valueobject.MonthOf(*input.EndDate).FirstDay()
		entry.EndDate = &normalized
	}

	if err := validateEntryFields(entry.Kind, entry.Category, entry.Description, entry.Amount); err != nil {
		return nil, err
	}

	if entry.EndDate != nil {
		if !entry.IsRecurring {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEndDateOnOneOff,
				"one-off entries cannot have an end date",
				domainerror.ErrEndDateOnOneOff,
			)
		}
		if valueobject.MonthOf(*entry.EndDate).Before(valueobject.MonthOf(entry.Date)) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeEndDateBeforeStart,
				"end date precedes start date",
				domainerror.ErrEndDateBeforeStart,
			)
		}
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: entry}, nil
}
