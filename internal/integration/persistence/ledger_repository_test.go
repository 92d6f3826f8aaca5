// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.LedgerEntryModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newStoredEntry(userID uuid.UUID, description string, amount string, entryDate time.Time, recurring bool) *entity.LedgerEntry {
	return entity.NewLedgerEntry(
		userID,
		entity.EntryKindExpense,
		entity.CategoryHousing,
		description,
		decimal.RequireFromString(amount),
		entryDate,
		recurring,
	)
}

func TestLedgerRepository_CreateAndFindByID(t *testing.T) {
	repo := NewLedgerRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	entry := newStoredEntry(userID, "rent", "1500.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)

	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	found, err := repo.FindByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("failed to find entry: %v", err)
	}

	if found.ID != entry.ID || found.UserID != userID {
		t.Error("expected identifiers to round-trip")
	}
	if found.Description != "rent" || found.Kind != entity.EntryKindExpense || found.Category != entity.CategoryHousing {
		t.Error("expected descriptive fields to round-trip")
	}
	if !found.Amount.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("expected amount 1500.00, got %s", found.Amount)
	}
	if !found.IsRecurring || found.EndDate != nil {
		t.Error("expected an open recurring entry")
	}
}

func TestLedgerRepository_FindByIDNotFound(t *testing.T) {
	repo := NewLedgerRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestLedgerRepository_FindByUser(t *testing.T) {
	repo := NewLedgerRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	older := newStoredEntry(userID, "rent", "1400.00", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), true)
	newer := newStoredEntry(userID, "rent", "1500.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)
	other := newStoredEntry(uuid.New(), "gym", "30.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)

	for _, entry := range []*entity.LedgerEntry{older, newer, other} {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	entries, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != newer.ID || entries[1].ID != older.ID {
		t.Error("expected entries ordered newest first")
	}
}

func TestLedgerRepository_Update(t *testing.T) {
	repo := NewLedgerRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	entry := newStoredEntry(userID, "rent", "1500.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	t.Run("persists a set end date", func(t *testing.T) {
		endDate := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		entry.EndDate = &endDate
		entry.UpdatedAt = time.Now().UTC()

		if err := repo.Update(ctx, entry); err != nil {
			t.Fatalf("failed to update entry: %v", err)
		}

		found, err := repo.FindByID(ctx, entry.ID)
		if err != nil {
			t.Fatalf("failed to find entry: %v", err)
		}
		if found.EndDate == nil || !found.EndDate.Equal(endDate) {
			t.Errorf("expected end date %s, got %v", endDate, found.EndDate)
		}
	})

	t.Run("clearing the end date writes null", func(t *testing.T) {
		entry.EndDate = nil
		entry.UpdatedAt = time.Now().UTC()

		if err := repo.Update(ctx, entry); err != nil {
			t.Fatalf("failed to update entry: %v", err)
		}

		found, err := repo.FindByID(ctx, entry.ID)
		if err != nil {
			t.Fatalf("failed to find entry: %v", err)
		}
		if found.EndDate != nil {
			t.Errorf("expected cleared end date, got %v", found.EndDate)
		}
	})

	t.Run("unknown entry reports not found", func(t *testing.T) {
		missing := newStoredEntry(userID, "gym", "30.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)

		err := repo.Update(ctx, missing)
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestLedgerRepository_Delete(t *testing.T) {
	repo := NewLedgerRepository(newTestDB(t))
	ctx := context.Background()

	entry := newStoredEntry(uuid.New(), "rent", "1500.00", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true)
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if err := repo.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}

	_, err := repo.FindByID(ctx, entry.ID)
	if !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound after delete, got %v", err)
	}
}
