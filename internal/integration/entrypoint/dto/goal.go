// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fireplan/backend/internal/application/usecase/goal"
	"github.com/fireplan/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=120"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
	TargetDate   *string `json:"target_date,omitempty"`
	AlertOnReach *bool   `json:"alert_on_reach,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	TargetAmount    *float64 `json:"target_amount,omitempty"`
	TargetDate      *string  `json:"target_date,omitempty"`
	ClearTargetDate bool     `json:"clear_target_date,omitempty"`
	AlertOnReach    *bool    `json:"alert_on_reach,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	TargetAmount string    `json:"target_amount"`
	TargetDate   *string   `json:"target_date,omitempty"`
	AlertOnReach bool      `json:"alert_on_reach"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalProgressResponse represents a goal with its savings progress.
type GoalProgressResponse struct {
	GoalResponse
	SavedAmount string `json:"saved_amount"`
	Reached     bool   `json:"reached"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals       []GoalProgressResponse `json:"goals"`
	SavedAmount string                 `json:"saved_amount"`
}

// ToGoalResponse converts a Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:           g.ID.String(),
		UserID:       g.UserID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount.String(),
		AlertOnReach: g.AlertOnReach,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if g.TargetDate != nil {
		targetDate := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &targetDate
	}

	return response
}

// ToGoalListResponse converts a ListGoalsOutput to a GoalListResponse DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	response := GoalListResponse{
		Goals:       make([]GoalProgressResponse, len(output.Goals)),
		SavedAmount: output.SavedAmount.String(),
	}

	for i, gp := range output.Goals {
		response.Goals[i] = GoalProgressResponse{
			GoalResponse: ToGoalResponse(gp.Goal),
			SavedAmount:  gp.SavedAmount.String(),
			Reached:      gp.Reached,
		}
	}

	return response
}
