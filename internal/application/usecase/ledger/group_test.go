// Package ledger contains the expense ledger use cases.
package ledger

import (
	"testing"
	"time"

	"github.com/fireplan/backend/internal/domain/entity"
)

func TestGroupByDescription(t *testing.T) {
	t.Run("closed entries are historical, the open one is current", func(t *testing.T) {
		old := testEntry(entity.EntryKindExpense, "Netflix", "9.99", date(2023, time.January, 1), true, datePtr(2023, time.December, 1))
		mid := testEntry(entity.EntryKindExpense, "Netflix", "12.99", date(2024, time.January, 1), true, datePtr(2024, time.May, 1))
		current := testEntry(entity.EntryKindExpense, "Netflix", "15.99", date(2024, time.June, 1), true, nil)

		groups := GroupByDescription([]*entity.LedgerEntry{old, mid, current})

		if len(groups) != 1 {
			t.Fatalf("expected 1 group, got %d", len(groups))
		}
		group := groups[0]

		if group.Key != "Netflix" || group.Description != "Netflix" {
			t.Errorf("expected key and description Netflix, got %q/%q", group.Key, group.Description)
		}
		if group.Current != current {
			t.Error("expected the open entry to be current")
		}
		if len(group.Historical) != 2 {
			t.Fatalf("expected 2 historical entries, got %d", len(group.Historical))
		}
	})

	t.Run("history is sorted newest first", func(t *testing.T) {
		oldest := testEntry(entity.EntryKindExpense, "Netflix", "9.99", date(2023, time.January, 1), true, datePtr(2023, time.December, 1))
		newest := testEntry(entity.EntryKindExpense, "Netflix", "12.99", date(2024, time.January, 1), true, datePtr(2024, time.May, 1))

		// Insert oldest last to prove ordering comes from dates, not input order.
		groups := GroupByDescription([]*entity.LedgerEntry{newest, oldest})

		group := groups[0]
		if len(group.Historical) != 2 {
			t.Fatalf("expected 2 historical entries, got %d", len(group.Historical))
		}
		if group.Historical[0] != newest || group.Historical[1] != oldest {
			t.Error("expected historical entries ordered newest first")
		}
	})

	t.Run("descriptions are matched exactly", func(t *testing.T) {
		a := testEntry(entity.EntryKindExpense, "Netflix", "15.99", date(2024, time.January, 1), true, nil)
		b := testEntry(entity.EntryKindExpense, "netflix ", "15.99", date(2024, time.January, 1), true, nil)

		groups := GroupByDescription([]*entity.LedgerEntry{a, b})

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups for distinct raw descriptions, got %d", len(groups))
		}
	})

	t.Run("group order follows first appearance", func(t *testing.T) {
		entries := []*entity.LedgerEntry{
			testEntry(entity.EntryKindExpense, "rent", "1500.00", date(2024, time.January, 1), true, nil),
			testEntry(entity.EntryKindExpense, "gym", "30.00", date(2024, time.January, 1), true, nil),
			testEntry(entity.EntryKindExpense, "rent", "1400.00", date(2023, time.January, 1), true, datePtr(2023, time.December, 1)),
		}

		groups := GroupByDescription(entries)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Key != "rent" || groups[1].Key != "gym" {
			t.Errorf("expected group order rent, gym; got %s, %s", groups[0].Key, groups[1].Key)
		}
	})

	t.Run("two open entries demote the earlier one", func(t *testing.T) {
		earlier := testEntry(entity.EntryKindExpense, "rent", "1400.00", date(2023, time.June, 1), true, nil)
		later := testEntry(entity.EntryKindExpense, "rent", "1500.00", date(2024, time.January, 1), true, nil)

		groups := GroupByDescription([]*entity.LedgerEntry{earlier, later})

		group := groups[0]
		if group.Current != later {
			t.Error("expected the later-dated open entry to be current")
		}
		if len(group.Historical) != 1 || group.Historical[0] != earlier {
			t.Error("expected the earlier open entry to be demoted, not dropped")
		}
	})

	t.Run("two open entries in reverse input order", func(t *testing.T) {
		earlier := testEntry(entity.EntryKindExpense, "rent", "1400.00", date(2023, time.June, 1), true, nil)
		later := testEntry(entity.EntryKindExpense, "rent", "1500.00", date(2024, time.January, 1), true, nil)

		groups := GroupByDescription([]*entity.LedgerEntry{later, earlier})

		group := groups[0]
		if group.Current != later {
			t.Error("expected the later-dated open entry to be current regardless of input order")
		}
		if len(group.Historical) != 1 || group.Historical[0] != earlier {
			t.Error("expected the earlier open entry in history")
		}
	})

	t.Run("group with only closed entries has no current", func(t *testing.T) {
		closed := testEntry(entity.EntryKindExpense, "gym", "30.00", date(2024, time.January, 1), true, datePtr(2024, time.June, 1))

		groups := GroupByDescription([]*entity.LedgerEntry{closed})

		group := groups[0]
		if group.Current != nil {
			t.Error("expected no current entry for a fully closed item")
		}
		if len(group.Historical) != 1 {
			t.Fatalf("expected 1 historical entry, got %d", len(group.Historical))
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		first := testEntry(entity.EntryKindExpense, "Netflix", "12.99", date(2024, time.January, 1), true, datePtr(2024, time.May, 1))
		second := testEntry(entity.EntryKindExpense, "Netflix", "15.99", date(2024, time.June, 1), true, nil)
		input := []*entity.LedgerEntry{first, second}

		GroupByDescription(input)

		if input[0] != first || input[1] != second {
			t.Error("expected input order to be preserved")
		}
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		groups := GroupByDescription(nil)
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})
}
