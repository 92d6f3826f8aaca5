package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// Create stores a generated insight.
func (r *insightRepository) Create(ctx context.Context, insight *entity.Insight) error {
	insightModel := model.InsightFromEntity(insight)
	result := r.db.WithContext(ctx).Create(insightModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindLatestByUserAndMonth retrieves the most recent insight for a user month.
func (r *insightRepository) FindLatestByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.Insight, error) {
	var insightModel model.InsightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("created_at DESC").
		First(&insightModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInsightNotFound
		}
		return nil, result.Error
	}
	return insightModel.ToEntity(), nil
}
