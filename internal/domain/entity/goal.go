// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target on the road to financial independence.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time
	AlertOnReach bool
	NotifiedAt   *time.Time // Set once the goal-reached alert has been queued.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, targetDate *time.Time, alertOnReach bool) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		AlertOnReach: alertOnReach,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GoalWithProgress represents a goal with its derived savings progress.
// SavedAmount is the lifetime net of savings-category ledger entries.
type GoalWithProgress struct {
	Goal        *Goal
	SavedAmount decimal.Decimal
	Reached     bool
}
