// Package valueobject defines immutable domain value types.
package valueobject

import (
	"fmt"
	"time"
)

// monthLayout is the wire format for a specific month (e.g., "2024-03").
const monthLayout = "2006-01"

// allMonthsToken is the sentinel accepted in place of a specific month.
const allMonthsToken = "all"

// Month is a point on the monthly calendar grid, or the "all months"
// sentinel used to disable month filtering.
type Month struct {
	year  int
	month time.Month
	all   bool
}

// AllMonths returns the sentinel Month matching every calendar month.
func AllMonths() Month {
	return Month{all: true}
}

// NewMonth creates a Month for the given year and calendar month.
func NewMonth(year int, month time.Month) Month {
	return Month{year: year, month: month}
}

// MonthOf returns the Month containing the given date.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// ParseMonth parses "YYYY-MM" or the "all" sentinel.
func ParseMonth(s string) (Month, error) {
	if s == allMonthsToken {
		return AllMonths(), nil
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// IsAll reports whether this is the "all months" sentinel.
func (m Month) IsAll() bool {
	return m.all
}

// Year returns the calendar year. Zero for the sentinel.
func (m Month) Year() int {
	return m.year
}

// Month returns the calendar month. Zero for the sentinel.
func (m Month) Month() time.Month {
	return m.month
}

// index collapses year and month into a single comparable ordinal.
func (m Month) index() int {
	return m.year*12 + int(m.month) - 1
}

// Equal reports whether two months are the same grid point (or both "all").
func (m Month) Equal(other Month) bool {
	if m.all || other.all {
		return m.all == other.all
	}
	return m.index() == other.index()
}

// Before reports whether m precedes other on the monthly grid.
// The sentinel is never before or after anything.
func (m Month) Before(other Month) bool {
	if m.all || other.all {
		return false
	}
	return m.index() < other.index()
}

// After reports whether m follows other on the monthly grid.
func (m Month) After(other Month) bool {
	if m.all || other.all {
		return false
	}
	return m.index() > other.index()
}

// Prev returns the immediately preceding month.
func (m Month) Prev() Month {
	return MonthOf(m.FirstDay().AddDate(0, -1, 0))
}

// Next returns the immediately following month.
func (m Month) Next() Month {
	return MonthOf(m.FirstDay().AddDate(0, 1, 0))
}

// FirstDay returns midnight UTC on the first day of the month.
// Rate-change boundaries are always expressed this way.
func (m Month) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// String returns the "YYYY-MM" form, or "all" for the sentinel.
func (m Month) String() string {
	if m.all {
		return allMonthsToken
	}
	return m.FirstDay().Format(monthLayout)
}
