// Package cache implements short-lived caching on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/domain/entity"
)

// insightCache implements the adapter.InsightCache interface on Redis.
type insightCache struct {
	client *redis.Client
}

// NewInsightCache creates a new insight cache instance.
func NewInsightCache(client *redis.Client) adapter.InsightCache {
	return &insightCache{
		client: client,
	}
}

func insightKey(userID uuid.UUID, month string) string {
	return fmt.Sprintf("insight:%s:%s", userID, month)
}

// Get retrieves a cached insight for a user month. A miss returns (nil, nil).
func (c *insightCache) Get(ctx context.Context, userID uuid.UUID, month string) (*entity.Insight, error) {
	payload, err := c.client.Get(ctx, insightKey(userID, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var insight entity.Insight
	if err := json.Unmarshal(payload, &insight); err != nil {
		return nil, fmt.Errorf("failed to decode cached insight: %w", err)
	}

	return &insight, nil
}

// Set caches an insight for a user month with the given TTL.
func (c *insightCache) Set(ctx context.Context, insight *entity.Insight, ttl time.Duration) error {
	payload, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to encode insight: %w", err)
	}

	return c.client.Set(ctx, insightKey(insight.UserID, insight.Month), payload, ttl).Err()
}
