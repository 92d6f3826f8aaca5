// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fireplan/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database.
type InsightModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_insights_user_month"`
	Month       string         `gorm:"type:varchar(7);not null;index:idx_insights_user_month"`
	Headline    string         `gorm:"type:varchar(500);not null"`
	Highlights  pq.StringArray `gorm:"type:text[]"`
	Suggestions pq.StringArray `gorm:"type:text[]"`
	Model       string         `gorm:"type:varchar(100)"`
	CreatedAt   time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	return &entity.Insight{
		ID:          m.ID,
		UserID:      m.UserID,
		Month:       m.Month,
		Headline:    m.Headline,
		Highlights:  []string(m.Highlights),
		Suggestions: []string(m.Suggestions),
		Model:       m.Model,
		CreatedAt:   m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(insight *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:          insight.ID,
		UserID:      insight.UserID,
		Month:       insight.Month,
		Headline:    insight.Headline,
		Highlights:  pq.StringArray(insight.Highlights),
		Suggestions: pq.StringArray(insight.Suggestions),
		Model:       insight.Model,
		CreatedAt:   insight.CreatedAt,
	}
}
