// Package ledger contains the expense ledger use cases: month-window
// classification, description grouping, and the rate-change transaction.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/domain/entity"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// IsActiveInMonth reports whether the entry's amount counts toward the
// target month. Pure function, safe to call on every request.
//
// One-off entries are active only in their own calendar month. Recurring
// entries model the inclusive month interval [start, end], open-ended when
// EndDate is nil. The "all" sentinel disables filtering entirely.
// Comparison is month-granular: day-of-month is ignored because recurrence
// boundaries always land on month boundaries.
func IsActiveInMonth(entry *entity.LedgerEntry, target valueobject.Month) bool {
	if target.IsAll() {
		return true
	}

	// A stored entry with no usable date is excluded from every specific
	// month rather than failing the caller.
	if entry.Date.IsZero() {
		return false
	}

	start := valueobject.MonthOf(entry.Date)

	if !entry.IsRecurring {
		return start.Equal(target)
	}

	if target.Before(start) {
		return false
	}
	if entry.EndDate != nil && target.After(valueobject.MonthOf(*entry.EndDate)) {
		return false
	}
	return true
}

// ActiveTotal sums the amounts of entries active in the target month.
func ActiveTotal(entries []*entity.LedgerEntry, target valueobject.Month) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		if IsActiveInMonth(entry, target) {
			total = total.Add(entry.Amount)
		}
	}
	return total
}

// LifetimeTotal sums every entry's amount regardless of month. Each record
// contributes once; recurrence is not expanded into occurrences.
func LifetimeTotal(entries []*entity.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total
}

// NetActiveTotal returns income minus expense over the entries active in
// the target month.
func NetActiveTotal(entries []*entity.LedgerEntry, target valueobject.Month) decimal.Decimal {
	net := decimal.Zero
	for _, entry := range entries {
		if !IsActiveInMonth(entry, target) {
			continue
		}
		if entry.Kind == entity.EntryKindIncome {
			net = net.Add(entry.Amount)
		} else {
			net = net.Sub(entry.Amount)
		}
	}
	return net
}
