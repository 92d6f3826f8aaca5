// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fireplan/backend/internal/application/adapter"
)

// GeminiService implements the AIInsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights produces a financial summary for the given month view.
func (s *GeminiService) GenerateInsights(ctx context.Context, request *adapter.InsightRequest) (*adapter.InsightResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	result.Model = s.modelName

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance coach for people pursuing financial independence. Your task is to analyze one month of a household budget and produce a short, actionable summary.

GUIDELINES:
- Be concrete: reference actual descriptions, categories, and amounts from the data
- Focus on the savings rate and the largest recurring costs
- Suggestions must be realistic actions, not platitudes
- Keep the headline to a single sentence
- Write between 2 and 4 highlights and between 1 and 3 suggestions
- Amounts are in ` + request.Currency + `

BUDGET FOR `)
	sb.WriteString(request.Month)
	sb.WriteString(":\n")
	sb.WriteString(fmt.Sprintf("- Total income: %s\n", request.IncomeTotal))
	sb.WriteString(fmt.Sprintf("- Total expenses: %s\n", request.ExpenseTotal))

	sb.WriteString("\nENTRIES:\n")
	for _, entry := range request.Entries {
		recurrence := "one-off"
		if entry.Recurring {
			recurrence = "monthly"
		}
		sb.WriteString(fmt.Sprintf("- %s | %s | \"%s\" | %s | %s\n",
			entry.Kind, entry.Category, entry.Description, entry.Amount, recurrence))
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "headline": "one-sentence summary of the month",
  "highlights": ["notable observation", ...],
  "suggestions": ["concrete action the user could take", ...]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiInsight represents the raw response from Gemini.
type geminiInsight struct {
	Headline    string   `json:"headline"`
	Highlights  []string `json:"highlights"`
	Suggestions []string `json:"suggestions"`
}

// parseResponse parses the Gemini response into an InsightResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.InsightResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insight geminiInsight
	if err := json.Unmarshal([]byte(textContent), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if insight.Headline == "" {
		return nil, fmt.Errorf("response missing headline")
	}

	return &adapter.InsightResult{
		Headline:    insight.Headline,
		Highlights:  insight.Highlights,
		Suggestions: insight.Suggestions,
	}, nil
}
