// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fireplan/backend/internal/domain/entity"
)

// InsightRepository defines the interface for insight persistence operations.
type InsightRepository interface {
	// Create stores a generated insight.
	Create(ctx context.Context, insight *entity.Insight) error

	// FindLatestByUserAndMonth retrieves the most recent insight for a user month.
	FindLatestByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.Insight, error)
}

// InsightCache defines the interface for short-lived insight caching.
// A cache miss is reported as (nil, nil).
type InsightCache interface {
	// Get retrieves a cached insight for a user month, if present.
	Get(ctx context.Context, userID uuid.UUID, month string) (*entity.Insight, error)

	// Set caches an insight for a user month with the given TTL.
	Set(ctx context.Context, insight *entity.Insight, ttl time.Duration) error
}
