// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// InsightEntry is one ledger line presented to the AI model.
type InsightEntry struct {
	Kind        string
	Category    string
	Description string
	Amount      string
	Recurring   bool
}

// InsightRequest represents the input for AI insight generation.
type InsightRequest struct {
	Month        string
	Currency     string
	IncomeTotal  string
	ExpenseTotal string
	Entries      []InsightEntry
}

// InsightResult represents the parsed output of AI insight generation.
type InsightResult struct {
	Headline    string
	Highlights  []string
	Suggestions []string
	Model       string
}

// AIInsightService defines the interface for the AI insight generator.
type AIInsightService interface {
	// IsAvailable checks if the AI service is configured.
	IsAvailable() bool

	// GenerateInsights produces a financial summary for the given month view.
	GenerateInsights(ctx context.Context, request *InsightRequest) (*InsightResult, error)
}
