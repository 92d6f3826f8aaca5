// Package ledger contains the expense ledger use cases.
package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
)

// fakeLedgerRepository records calls so tests can assert on sequencing.
type fakeLedgerRepository struct {
	entries map[uuid.UUID]*entity.LedgerEntry

	updateErr error
	createErr error

	updateCalls int
	createCalls int
	lastUpdated *entity.LedgerEntry
	lastCreated *entity.LedgerEntry
}

func newFakeLedgerRepository(entries ...*entity.LedgerEntry) *fakeLedgerRepository {
	repo := &fakeLedgerRepository{entries: make(map[uuid.UUID]*entity.LedgerEntry)}
	for _, entry := range entries {
		repo.entries[entry.ID] = entry
	}
	return repo
}

func (r *fakeLedgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.entries[entry.ID] = entry
	r.lastCreated = entry
	return nil
}

func (r *fakeLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeLedgerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var result []*entity.LedgerEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeLedgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.entries[entry.ID] = entry
	r.lastUpdated = entry
	return nil
}

func (r *fakeLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

// fakeEmailService records queued notifications.
type fakeEmailService struct {
	rateChangeNotices []adapter.QueueRateChangeNoticeInput
	goalReachedAlerts []adapter.QueueGoalReachedInput
	queueErr          error
}

func (s *fakeEmailService) QueueRateChangeNotice(ctx context.Context, input adapter.QueueRateChangeNoticeInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.rateChangeNotices = append(s.rateChangeNotices, input)
	return nil
}

func (s *fakeEmailService) QueueGoalReachedEmail(ctx context.Context, input adapter.QueueGoalReachedInput) error {
	if s.queueErr != nil {
		return s.queueErr
	}
	s.goalReachedAlerts = append(s.goalReachedAlerts, input)
	return nil
}

func openRecurringEntry(userID uuid.UUID, description string, amount string, start time.Time) *entity.LedgerEntry {
	entry := testEntry(entity.EntryKindExpense, description, amount, start, true, nil)
	entry.UserID = userID
	return entry
}

func assertLedgerCode(t *testing.T, err error, code domainerror.LedgerErrorCode) {
	t.Helper()
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected a ledger error, got %v", err)
	}
	if ledgerErr.Code != code {
		t.Errorf("expected code %s, got %s", code, ledgerErr.Code)
	}
}

func TestChangeRateUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("closes the old entry and opens the successor on month boundaries", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		emails := &fakeEmailService{}
		uc := NewChangeRateUseCase(repo, emails)

		output, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			UserEmail:     "user@example.com",
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 17),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ClosedEntry.EndDate == nil {
			t.Fatal("expected the old entry to be closed")
		}
		wantEnd := date(2024, time.February, 1)
		if !output.ClosedEntry.EndDate.Equal(wantEnd) {
			t.Errorf("expected end date %s, got %s", wantEnd, output.ClosedEntry.EndDate)
		}
		if !output.ClosedEntry.Amount.Equal(decimal.RequireFromString("1500.00")) {
			t.Error("expected the old entry to keep its amount")
		}

		wantStart := date(2024, time.March, 1)
		if !output.NewEntry.Date.Equal(wantStart) {
			t.Errorf("expected successor start %s, got %s", wantStart, output.NewEntry.Date)
		}
		if !output.NewEntry.Amount.Equal(decimal.RequireFromString("1600.00")) {
			t.Errorf("expected successor amount 1600.00, got %s", output.NewEntry.Amount)
		}
		if output.NewEntry.EndDate != nil {
			t.Error("expected the successor to be open ended")
		}
		if !output.NewEntry.IsRecurring {
			t.Error("expected the successor to be recurring")
		}
		if output.NewEntry.Description != "rent" || output.NewEntry.Category != entity.CategoryOther {
			t.Error("expected the successor to inherit description and category")
		}
		if output.NewEntry.ID == output.ClosedEntry.ID {
			t.Error("expected the successor to be a distinct record")
		}

		if repo.updateCalls != 1 || repo.createCalls != 1 {
			t.Errorf("expected 1 update and 1 create, got %d and %d", repo.updateCalls, repo.createCalls)
		}
	})

	t.Run("queues a confirmation email with old and new amounts", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		emails := &fakeEmailService{}
		uc := NewChangeRateUseCase(repo, emails)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			UserEmail:     "user@example.com",
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(emails.rateChangeNotices) != 1 {
			t.Fatalf("expected 1 queued notice, got %d", len(emails.rateChangeNotices))
		}
		notice := emails.rateChangeNotices[0]
		if notice.OldAmount != "1500.00" || notice.NewAmount != "1600.00" {
			t.Errorf("expected amounts 1500.00 and 1600.00, got %s and %s", notice.OldAmount, notice.NewAmount)
		}
		if notice.EffectiveMonth != "2024-03" {
			t.Errorf("expected effective month 2024-03, got %s", notice.EffectiveMonth)
		}
	})

	t.Run("succeeds without an email service", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("email queue failure does not fail the rate change", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		emails := &fakeEmailService{queueErr: errors.New("queue down")}
		uc := NewChangeRateUseCase(repo, emails)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			UserEmail:     "user@example.com",
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.Zero,
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeInvalidEntryAmount)
		if repo.updateCalls != 0 || repo.createCalls != 0 {
			t.Error("expected no repository calls on validation failure")
		}
	})

	t.Run("rejects an unknown entry", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       uuid.New(),
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeEntryNotFound)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Error("expected the not-found sentinel in the chain")
		}
	})

	t.Run("rejects another user's entry", func(t *testing.T) {
		entry := openRecurringEntry(uuid.New(), "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeNotAuthorizedEntry)
	})

	t.Run("rejects a one-off entry", func(t *testing.T) {
		entry := testEntry(entity.EntryKindExpense, "tires", "400.00", date(2024, time.January, 15), false, nil)
		entry.UserID = userID
		repo := newFakeLedgerRepository(entry)
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("500.00"),
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeEntryNotOpenRecurring)
	})

	t.Run("rejects an already closed recurring entry", func(t *testing.T) {
		entry := testEntry(entity.EntryKindExpense, "gym", "30.00", date(2024, time.January, 1), true, datePtr(2024, time.June, 1))
		entry.UserID = userID
		repo := newFakeLedgerRepository(entry)
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("35.00"),
			EffectiveDate: date(2024, time.August, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeEntryNotOpenRecurring)
	})

	t.Run("rejects an effective month at or before the start month", func(t *testing.T) {
		tests := []struct {
			name      string
			effective time.Time
		}{
			{"same month", date(2024, time.January, 20)},
			{"earlier month", date(2023, time.November, 1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
				repo := newFakeLedgerRepository(entry)
				uc := NewChangeRateUseCase(repo, nil)

				_, err := uc.Execute(context.Background(), ChangeRateInput{
					EntryID:       entry.ID,
					UserID:        userID,
					NewAmount:     decimal.RequireFromString("1600.00"),
					EffectiveDate: tt.effective,
				})

				assertLedgerCode(t, err, domainerror.ErrCodeRateChangeTooEarly)
				if repo.updateCalls != 0 || repo.createCalls != 0 {
					t.Error("expected no repository calls when the effective month is too early")
				}
			})
		}
	})

	t.Run("close failure aborts before the create is attempted", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		repo.updateErr = errors.New("db down")
		uc := NewChangeRateUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeRateChangeCloseFailed)
		if repo.createCalls != 0 {
			t.Error("expected no create after a failed close")
		}
		if entry.EndDate != nil {
			t.Error("expected the in-memory entry to be restored after a failed close")
		}
	})

	t.Run("create failure after a successful close surfaces the partial state", func(t *testing.T) {
		entry := openRecurringEntry(userID, "rent", "1500.00", date(2024, time.January, 1))
		repo := newFakeLedgerRepository(entry)
		repo.createErr = errors.New("db down")
		emails := &fakeEmailService{}
		uc := NewChangeRateUseCase(repo, emails)

		_, err := uc.Execute(context.Background(), ChangeRateInput{
			EntryID:       entry.ID,
			UserID:        userID,
			UserEmail:     "user@example.com",
			NewAmount:     decimal.RequireFromString("1600.00"),
			EffectiveDate: date(2024, time.March, 1),
		})

		assertLedgerCode(t, err, domainerror.ErrCodeRateChangePartialFailed)
		if !errors.Is(err, domainerror.ErrRateChangePartialFailure) {
			t.Error("expected the partial-failure sentinel in the chain")
		}

		// No rollback: the close stays committed.
		if repo.updateCalls != 1 {
			t.Errorf("expected exactly 1 update, got %d", repo.updateCalls)
		}
		if entry.EndDate == nil {
			t.Error("expected the closed entry to keep its end date")
		}
		if len(emails.rateChangeNotices) != 0 {
			t.Error("expected no confirmation email on partial failure")
		}
	})
}
