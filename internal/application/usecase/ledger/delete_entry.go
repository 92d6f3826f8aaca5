// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fireplan/backend/internal/application/adapter"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for ledger entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryUseCase handles ledger entry deletion logic.
type DeleteEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(ledgerRepo adapter.LedgerRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the ledger entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	entry, err := uc.ledgerRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return fmt.Errorf("failed to find ledger entry: %w", err)
	}

	if entry.UserID != input.UserID {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to delete this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if err := uc.ledgerRepo.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	return nil
}
