package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fireplan/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*insightCache, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return &insightCache{client: client}, mini
}

func TestInsightCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	insight := entity.NewInsight(
		uuid.New(),
		"2024-03",
		"Spending held steady while income grew",
		[]string{"Rent is 40% of expenses"},
		[]string{"Review the streaming subscriptions"},
		"gemini-2.5-flash-lite",
	)

	if err := cache.Set(ctx, insight, time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, insight.UserID, insight.Month)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached insight, got nil")
	}
	if got.Headline != insight.Headline {
		t.Errorf("headline = %q, want %q", got.Headline, insight.Headline)
	}
	if len(got.Highlights) != 1 || got.Highlights[0] != insight.Highlights[0] {
		t.Errorf("highlights = %v, want %v", got.Highlights, insight.Highlights)
	}
}

func TestInsightCacheMissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), uuid.New(), "2024-03")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %+v", got)
	}
}

func TestInsightCacheExpires(t *testing.T) {
	cache, mini := newTestCache(t)
	ctx := context.Background()

	insight := entity.NewInsight(uuid.New(), "2024-03", "headline", nil, nil, "model")
	if err := cache.Set(ctx, insight, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mini.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, insight.UserID, insight.Month)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired entry to miss, got %+v", got)
	}
}
