// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Insight represents an AI-generated financial summary for one user month.
type Insight struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Month       string // "YYYY-MM" or "all"
	Headline    string
	Highlights  []string
	Suggestions []string
	Model       string // Generating model identifier, informational.
	CreatedAt   time.Time
}

// NewInsight creates a new Insight entity.
func NewInsight(userID uuid.UUID, month, headline string, highlights, suggestions []string, model string) *Insight {
	return &Insight{
		ID:          uuid.New(),
		UserID:      userID,
		Month:       month,
		Headline:    headline,
		Highlights:  highlights,
		Suggestions: suggestions,
		Model:       model,
		CreatedAt:   time.Now().UTC(),
	}
}
