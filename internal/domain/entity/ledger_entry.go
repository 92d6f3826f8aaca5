// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the kind of ledger entry (expense or income).
type EntryKind string

const (
	EntryKindExpense EntryKind = "expense"
	EntryKindIncome  EntryKind = "income"
)

// EntryCategory is the presentational tag attached to a ledger entry.
type EntryCategory string

const (
	CategoryHousing        EntryCategory = "housing"
	CategoryTransportation EntryCategory = "transportation"
	CategoryFood           EntryCategory = "food"
	CategoryUtilities      EntryCategory = "utilities"
	CategoryHealthcare     EntryCategory = "healthcare"
	CategoryEntertainment  EntryCategory = "entertainment"
	CategoryPersonal       EntryCategory = "personal"
	CategorySavings        EntryCategory = "savings"
	CategoryOther          EntryCategory = "other"
)

// EntryCategories lists every valid category, in display order.
var EntryCategories = []EntryCategory{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryPersonal,
	CategorySavings,
	CategoryOther,
}

// IsValidEntryCategory reports whether the category is a known tag.
func IsValidEntryCategory(c EntryCategory) bool {
	for _, known := range EntryCategories {
		if c == known {
			return true
		}
	}
	return false
}

// LedgerEntry represents one income or expense record in the FIRE Plan ledger.
//
// A one-off entry occurs in exactly one calendar month (the month of Date).
// A recurring entry repeats monthly from Date until EndDate, or indefinitely
// while EndDate is nil. EndDate, when set, is always the first day of its
// month: rate changes take effect on month boundaries only.
type LedgerEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        EntryKind
	Category    EntryCategory
	Description string
	Amount      decimal.Decimal // Always positive; Kind carries the sign.
	Date        time.Time
	EndDate     *time.Time
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(
	userID uuid.UUID,
	kind EntryKind,
	category EntryCategory,
	description string,
	amount decimal.Decimal,
	date time.Time,
	isRecurring bool,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsOpen reports whether the entry is a recurring entry with no end date,
// i.e. the current instance of its logical line item.
func (e *LedgerEntry) IsOpen() bool {
	return e.IsRecurring && e.EndDate == nil
}
