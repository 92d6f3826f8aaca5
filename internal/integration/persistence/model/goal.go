// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(120);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate   sql.NullTime    `gorm:"type:date"`
	AlertOnReach bool            `gorm:"default:true"`
	NotifiedAt   sql.NullTime    `gorm:"type:timestamptz"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var targetDate *time.Time
	if m.TargetDate.Valid {
		targetDate = &m.TargetDate.Time
	}

	var notifiedAt *time.Time
	if m.NotifiedAt.Valid {
		notifiedAt = &m.NotifiedAt.Time
	}

	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		TargetDate:   targetDate,
		AlertOnReach: m.AlertOnReach,
		NotifiedAt:   notifiedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var targetDate sql.NullTime
	if goal.TargetDate != nil {
		targetDate = sql.NullTime{Time: *goal.TargetDate, Valid: true}
	}

	var notifiedAt sql.NullTime
	if goal.NotifiedAt != nil {
		notifiedAt = sql.NullTime{Time: *goal.NotifiedAt, Valid: true}
	}

	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		TargetDate:   targetDate,
		AlertOnReach: goal.AlertOnReach,
		NotifiedAt:   notifiedAt,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
