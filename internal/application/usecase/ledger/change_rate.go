// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// ChangeRateInput represents the input for a recurring entry rate change.
type ChangeRateInput struct {
	EntryID       uuid.UUID
	UserID        uuid.UUID
	UserEmail     string // Recipient for the confirmation email; empty skips it.
	NewAmount     decimal.Decimal
	EffectiveDate time.Time
}

// ChangeRateOutput represents the output of a rate change: the closed
// predecessor and its open successor, so the caller can replace the old
// entry in its local view and append the new one.
type ChangeRateOutput struct {
	ClosedEntry *entity.LedgerEntry
	NewEntry    *entity.LedgerEntry
}

// ChangeRateUseCase executes the two-step rate-change transaction: end the
// existing recurring entry at the month before the effective month, then
// open a successor at the new amount from the effective month onward.
type ChangeRateUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	emailService adapter.EmailService // Optional; nil disables confirmations.
}

// NewChangeRateUseCase creates a new ChangeRateUseCase instance.
func NewChangeRateUseCase(ledgerRepo adapter.LedgerRepository, emailService adapter.EmailService) *ChangeRateUseCase {
	return &ChangeRateUseCase{
		ledgerRepo:   ledgerRepo,
		emailService: emailService,
	}
}

// Execute performs the rate change.
//
// The closing update must be acknowledged before the create is issued. A
// close failure aborts the operation with no state changed. A create
// failure after a successful close leaves the ledger with a closed entry
// and no successor; that partial state is surfaced as
// ErrRateChangePartialFailure and is repairable by a manual edit - no
// compensating rollback is attempted.
func (uc *ChangeRateUseCase) Execute(ctx context.Context, input ChangeRateInput) (*ChangeRateOutput, error) {
	if !input.NewAmount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

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
			"not authorized to change this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if !entry.IsOpen() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotOpenRecurring,
			"rate changes apply only to open recurring entries",
			domainerror.ErrEntryNotOpenRecurring,
		)
	}

	// Recurring entries are month-granular: whatever day the user picked,
	// the new rate starts on the first of its month.
	effectiveMonth := valueobject.MonthOf(input.EffectiveDate)
	startMonth := valueobject.MonthOf(entry.Date)

	// An effective month at or before the start month would close the old
	// entry before it began, leaving an inverted interval.
	if !effectiveMonth.After(startMonth) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeRateChangeTooEarly,
			"effective date must be at least one month after the entry start",
			domainerror.ErrRateChangeTooEarly,
		)
	}

	oldAmount := entry.Amount
	boundary := effectiveMonth.Prev().FirstDay()

	// Step 1: close the old entry. Nothing else changes on it.
	entry.EndDate = &boundary
	entry.UpdatedAt = time.Now().UTC()
	if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		entry.EndDate = nil
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeRateChangeCloseFailed,
			"failed to close the existing entry",
			err,
		)
	}

	// Step 2: open the successor from the effective month, same line item.
	successor := entity.NewLedgerEntry(
		entry.UserID,
		entry.Kind,
		entry.Category,
		entry.Description,
		input.NewAmount,
		effectiveMonth.FirstDay(),
		true,
	)
	if err := uc.ledgerRepo.Create(ctx, successor); err != nil {
		slog.Error("Rate change partially applied: successor creation failed",
			"entry_id", entry.ID,
			"description", entry.Description,
			"end_date", boundary.Format("2006-01-02"),
			"error", err,
		)
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeRateChangePartialFailed,
			"entry was closed but the successor could not be created",
			fmt.Errorf("%w: %w", domainerror.ErrRateChangePartialFailure, err),
		)
	}

	uc.queueConfirmation(ctx, input, entry, oldAmount, successor)

	return &ChangeRateOutput{
		ClosedEntry: entry,
		NewEntry:    successor,
	}, nil
}

// queueConfirmation enqueues the rate-change confirmation email.
// Best-effort: a queueing failure never fails the rate change itself.
func (uc *ChangeRateUseCase) queueConfirmation(
	ctx context.Context,
	input ChangeRateInput,
	closed *entity.LedgerEntry,
	oldAmount decimal.Decimal,
	successor *entity.LedgerEntry,
) {
	if uc.emailService == nil || input.UserEmail == "" {
		return
	}

	err := uc.emailService.QueueRateChangeNotice(ctx, adapter.QueueRateChangeNoticeInput{
		UserEmail:      input.UserEmail,
		Description:    closed.Description,
		OldAmount:      oldAmount.StringFixed(2),
		NewAmount:      successor.Amount.StringFixed(2),
		EffectiveMonth: valueobject.MonthOf(successor.Date).String(),
	})
	if err != nil {
		slog.Warn("Failed to queue rate change confirmation email",
			"entry_id", closed.ID,
			"error", err,
		)
	}
}
