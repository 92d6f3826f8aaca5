package mock

import (
	"context"
	"sync"

	"github.com/fireplan/backend/internal/application/adapter"
)

// AIService is a scriptable stand-in for the insight generator.
type AIService struct {
	mu        sync.Mutex
	available bool
	result    *adapter.InsightResult
	err       error
	requests  []*adapter.InsightRequest
}

// NewAIService returns an available service with a canned result.
func NewAIService() *AIService {
	svc := &AIService{}
	svc.Reset()
	return svc
}

// Reset restores the default canned behavior.
func (s *AIService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = true
	s.err = nil
	s.requests = nil
	s.result = &adapter.InsightResult{
		Headline:    "Spending held steady this month",
		Highlights:  []string{"Housing is your largest category"},
		Suggestions: []string{"Review recurring subscriptions"},
		Model:       "mock-model",
	}
}

// SetUnavailable makes IsAvailable report false.
func (s *AIService) SetUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = false
}

// SetError makes GenerateInsights fail with the given error.
func (s *AIService) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// IsAvailable implements adapter.AIInsightService.
func (s *AIService) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// GenerateInsights implements adapter.AIInsightService.
func (s *AIService) GenerateInsights(ctx context.Context, request *adapter.InsightRequest) (*adapter.InsightResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, request)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// Requests returns every request seen so far.
func (s *AIService) Requests() []*adapter.InsightRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}
