// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fireplan/backend/internal/domain/entity"
)

// GenerateInsightsRequest represents the request body for insight generation.
type GenerateInsightsRequest struct {
	Month   string `json:"month" binding:"required"`
	Refresh bool   `json:"refresh,omitempty"`
}

// InsightResponse represents an AI-generated insight in API responses.
type InsightResponse struct {
	ID          string    `json:"id"`
	Month       string    `json:"month"`
	Headline    string    `json:"headline"`
	Highlights  []string  `json:"highlights"`
	Suggestions []string  `json:"suggestions"`
	Model       string    `json:"model,omitempty"`
	Cached      bool      `json:"cached"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToInsightResponse converts an Insight entity to an InsightResponse DTO.
func ToInsightResponse(insight *entity.Insight, cached bool) InsightResponse {
	return InsightResponse{
		ID:          insight.ID.String(),
		Month:       insight.Month,
		Headline:    insight.Headline,
		Highlights:  insight.Highlights,
		Suggestions: insight.Suggestions,
		Model:       insight.Model,
		Cached:      cached,
		CreatedAt:   insight.CreatedAt,
	}
}
