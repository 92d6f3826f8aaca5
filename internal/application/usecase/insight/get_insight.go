package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// GetInsightInput represents the input for insight retrieval.
type GetInsightInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
}

// GetInsightOutput represents the output of insight retrieval.
type GetInsightOutput struct {
	Insight *entity.Insight
}

// GetInsightUseCase returns the stored insight for a month without generating.
type GetInsightUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewGetInsightUseCase creates a new GetInsightUseCase instance.
func NewGetInsightUseCase(insightRepo adapter.InsightRepository) *GetInsightUseCase {
	return &GetInsightUseCase{
		insightRepo: insightRepo,
	}
}

// Execute retrieves the most recent insight for the requested month.
func (uc *GetInsightUseCase) Execute(ctx context.Context, input GetInsightInput) (*GetInsightOutput, error) {
	stored, err := uc.insightRepo.FindLatestByUserAndMonth(ctx, input.UserID, input.Month.String())
	if err != nil {
		if errors.Is(err, domainerror.ErrInsightNotFound) {
			return nil, domainerror.NewInsightError(
				domainerror.ErrCodeInsightNotFound,
				"no insight for "+input.Month.String(),
				domainerror.ErrInsightNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find insight: %w", err)
	}

	return &GetInsightOutput{Insight: stored}, nil
}
