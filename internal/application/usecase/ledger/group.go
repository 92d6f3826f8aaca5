// Package ledger contains the expense ledger use cases.
package ledger

import (
	"sort"

	"github.com/fireplan/backend/internal/domain/entity"
)

// DescriptionGroup is one logical line item: all entries sharing a
// description, split into the single current instance and its history.
type DescriptionGroup struct {
	Key         string
	Description string
	Current     *entity.LedgerEntry
	Historical  []*entity.LedgerEntry
}

// GroupByDescription clusters entries by exact description match into
// logical items, each with at most one current (open-ended) instance and
// its historical predecessors sorted newest-first.
//
// Keys are the raw descriptions: no trimming or case folding, so "Netflix"
// and "netflix " are distinct items. Group order is the order in which
// distinct descriptions first appear in the input.
//
// An entry with an end date is always historical. Among open entries the
// latest-dated one becomes current; any earlier open entries are demoted to
// historical rather than dropped. There should be at most one open entry
// per description, but stored data is tolerated, never rejected. The input
// slice is not mutated.
func GroupByDescription(entries []*entity.LedgerEntry) []*DescriptionGroup {
	groups := make([]*DescriptionGroup, 0)
	byKey := make(map[string]*DescriptionGroup)

	for _, entry := range entries {
		group, ok := byKey[entry.Description]
		if !ok {
			group = &DescriptionGroup{
				Key:         entry.Description,
				Description: entry.Description,
			}
			byKey[entry.Description] = group
			groups = append(groups, group)
		}

		if entry.EndDate != nil {
			group.Historical = append(group.Historical, entry)
			continue
		}

		if group.Current == nil {
			group.Current = entry
			continue
		}

		// Two open entries for one description: keep the later-dated one
		// current and demote the other.
		if entry.Date.After(group.Current.Date) {
			group.Historical = append(group.Historical, group.Current)
			group.Current = entry
		} else {
			group.Historical = append(group.Historical, entry)
		}
	}

	for _, group := range groups {
		sort.SliceStable(group.Historical, func(i, j int) bool {
			return group.Historical[i].Date.After(group.Historical[j].Date)
		})
	}

	return groups
}
