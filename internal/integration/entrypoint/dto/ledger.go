// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fireplan/backend/internal/application/usecase/ledger"
	"github.com/fireplan/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for ledger entry creation.
type CreateEntryRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=expense income"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	EndDate     *string `json:"end_date,omitempty"`
	IsRecurring bool    `json:"is_recurring,omitempty"`
}

// UpdateEntryRequest represents the request body for ledger entry update.
type UpdateEntryRequest struct {
	Kind         *string  `json:"kind,omitempty" binding:"omitempty,oneof=expense income"`
	Category     *string  `json:"category,omitempty"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount       *float64 `json:"amount,omitempty"`
	Date         *string  `json:"date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	ClearEndDate bool     `json:"clear_end_date,omitempty"`
	IsRecurring  *bool    `json:"is_recurring,omitempty"`
}

// ChangeRateRequest represents the request body for a recurring entry rate change.
type ChangeRateRequest struct {
	NewAmount     float64 `json:"new_amount" binding:"required"`
	EffectiveDate string  `json:"effective_date" binding:"required"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	EndDate     *string   `json:"end_date,omitempty"`
	IsRecurring bool      `json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryGroupResponse represents a logical line item: the current instance
// plus its rate history, newest first.
type EntryGroupResponse struct {
	Description string          `json:"description"`
	Current     *EntryResponse  `json:"current,omitempty"`
	Historical  []EntryResponse `json:"historical"`
}

// CategoryViewResponse represents one category block in the monthly view.
type CategoryViewResponse struct {
	Category      string               `json:"category"`
	ActiveTotal   string               `json:"active_total"`
	LifetimeTotal string               `json:"lifetime_total"`
	Groups        []EntryGroupResponse `json:"groups"`
}

// MonthlyViewResponse represents the response for the monthly ledger view.
type MonthlyViewResponse struct {
	Month         string                 `json:"month"`
	ActiveTotal   string                 `json:"active_total"`
	Categories    []CategoryViewResponse `json:"categories"`
	HistoryGroups []EntryGroupResponse   `json:"history_groups"`
}

// ChangeRateResponse represents the response for a rate change.
type ChangeRateResponse struct {
	ClosedEntry EntryResponse `json:"closed_entry"`
	NewEntry    EntryResponse `json:"new_entry"`
}

// ToEntryResponse converts a LedgerEntry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.LedgerEntry) EntryResponse {
	response := EntryResponse{
		ID:          entry.ID.String(),
		UserID:      entry.UserID.String(),
		Kind:        string(entry.Kind),
		Category:    string(entry.Category),
		Description: entry.Description,
		Amount:      entry.Amount.String(),
		Date:        entry.Date.Format("2006-01-02"),
		IsRecurring: entry.IsRecurring,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}

	if entry.EndDate != nil {
		endDate := entry.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}

	return response
}

// ToEntryGroupResponse converts a DescriptionGroup to an EntryGroupResponse DTO.
func ToEntryGroupResponse(group *ledger.DescriptionGroup) EntryGroupResponse {
	response := EntryGroupResponse{
		Description: group.Description,
		Historical:  make([]EntryResponse, len(group.Historical)),
	}

	if group.Current != nil {
		current := ToEntryResponse(group.Current)
		response.Current = &current
	}
	for i, entry := range group.Historical {
		response.Historical[i] = ToEntryResponse(entry)
	}

	return response
}

// ToMonthlyViewResponse converts a GetMonthlyViewOutput to a MonthlyViewResponse DTO.
func ToMonthlyViewResponse(output *ledger.GetMonthlyViewOutput) MonthlyViewResponse {
	response := MonthlyViewResponse{
		Month:         output.Month.String(),
		ActiveTotal:   output.ActiveTotal.String(),
		Categories:    make([]CategoryViewResponse, len(output.Categories)),
		HistoryGroups: make([]EntryGroupResponse, len(output.HistoryGroups)),
	}

	for i, category := range output.Categories {
		view := CategoryViewResponse{
			Category:      string(category.Category),
			ActiveTotal:   category.ActiveTotal.String(),
			LifetimeTotal: category.LifetimeTotal.String(),
			Groups:        make([]EntryGroupResponse, len(category.Groups)),
		}
		for j, group := range category.Groups {
			view.Groups[j] = ToEntryGroupResponse(group)
		}
		response.Categories[i] = view
	}

	for i, group := range output.HistoryGroups {
		response.HistoryGroups[i] = ToEntryGroupResponse(group)
	}

	return response
}
