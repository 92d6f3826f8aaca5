package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/application/usecase/ledger"
	"github.com/fireplan/backend/internal/domain/entity"
	domainerror "github.com/fireplan/backend/internal/domain/error"
	"github.com/fireplan/backend/internal/domain/valueobject"
)

// cacheTTL is how long a generated insight stays fresh in the cache.
const cacheTTL = 6 * time.Hour

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
	// Refresh skips cached and persisted insights and forces a new generation.
	Refresh bool
}

// GenerateInsightsOutput represents the output of insight generation.
type GenerateInsightsOutput struct {
	Insight *entity.Insight
	// Cached reports whether the insight was served without calling the model.
	Cached bool
}

// GenerateInsightsUseCase produces an AI summary for one month of the ledger.
type GenerateInsightsUseCase struct {
	ledgerRepo  adapter.LedgerRepository
	insightRepo adapter.InsightRepository
	cache       adapter.InsightCache
	aiService   adapter.AIInsightService
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	ledgerRepo adapter.LedgerRepository,
	insightRepo adapter.InsightRepository,
	cache adapter.InsightCache,
	aiService adapter.AIInsightService,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		ledgerRepo:  ledgerRepo,
		insightRepo: insightRepo,
		cache:       cache,
		aiService:   aiService,
	}
}

// Execute returns the insight for the requested month, generating one when
// neither the cache nor the store has a fresh copy.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	monthKey := input.Month.String()

	if !input.Refresh {
		if cached, err := uc.cache.Get(ctx, input.UserID, monthKey); err != nil {
			slog.Warn("insight cache lookup failed", "error", err, "user_id", input.UserID)
		} else if cached != nil {
			return &GenerateInsightsOutput{Insight: cached, Cached: true}, nil
		}

		stored, err := uc.insightRepo.FindLatestByUserAndMonth(ctx, input.UserID, monthKey)
		if err == nil && stored != nil {
			if cacheErr := uc.cache.Set(ctx, stored, cacheTTL); cacheErr != nil {
				slog.Warn("insight cache store failed", "error", cacheErr, "user_id", input.UserID)
			}
			return &GenerateInsightsOutput{Insight: stored, Cached: true}, nil
		}
	}

	if !uc.aiService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeAIUnavailable,
			"AI service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	entries, err := uc.ledgerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	request := buildRequest(input.Month, entries)
	if len(request.Entries) == 0 {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeNoEntriesForMonth,
			"no ledger entries for "+monthKey,
			domainerror.ErrNoEntriesForMonth,
		)
	}

	result, err := uc.aiService.GenerateInsights(ctx, request)
	if err != nil {
		procErr := classifyError(err)
		slog.Error("insight generation failed",
			"error", err,
			"code", procErr.Code,
			"retryable", procErr.Retryable,
			"user_id", input.UserID,
			"month", monthKey)
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeAIGeneration,
			procErr.Message,
			procErr,
		)
	}

	generated := entity.NewInsight(
		input.UserID,
		monthKey,
		result.Headline,
		result.Highlights,
		result.Suggestions,
		result.Model,
	)

	// Persistence and caching are best effort; the generated insight is
	// returned even when they fail.
	if err := uc.insightRepo.Create(ctx, generated); err != nil {
		slog.Warn("failed to persist insight", "error", err, "user_id", input.UserID)
	}
	if err := uc.cache.Set(ctx, generated, cacheTTL); err != nil {
		slog.Warn("insight cache store failed", "error", err, "user_id", input.UserID)
	}

	return &GenerateInsightsOutput{Insight: generated}, nil
}

// buildRequest filters the ledger down to the requested month and computes
// the income and expense totals the model prompt is seeded with.
func buildRequest(month valueobject.Month, entries []*entity.LedgerEntry) *adapter.InsightRequest {
	request := &adapter.InsightRequest{
		Month:    month.String(),
		Currency: "USD",
	}

	income := decimal.Zero
	expense := decimal.Zero

	for _, entry := range entries {
		if !ledger.IsActiveInMonth(entry, month) {
			continue
		}

		if entry.Kind == entity.EntryKindIncome {
			income = income.Add(entry.Amount)
		} else {
			expense = expense.Add(entry.Amount)
		}

		request.Entries = append(request.Entries, adapter.InsightEntry{
			Kind:        string(entry.Kind),
			Category:    string(entry.Category),
			Description: entry.Description,
			Amount:      entry.Amount.StringFixed(2),
			Recurring:   entry.IsRecurring,
		})
	}

	request.IncomeTotal = income.StringFixed(2)
	request.ExpenseTotal = expense.StringFixed(2)

	return request
}
