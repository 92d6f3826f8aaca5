// Package error defines domain-specific errors for the FIRE Plan application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrAIServiceUnavailable is returned when the AI service is not configured or reachable.
	ErrAIServiceUnavailable = errors.New("AI service unavailable")

	// ErrInsightNotFound is returned when no insight exists for the requested month.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrNoEntriesForMonth is returned when there is nothing to summarize.
	ErrNoEntriesForMonth = errors.New("no ledger entries for the requested month")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	ErrCodeAIUnavailable     InsightErrorCode = "INS-010001"
	ErrCodeNoEntriesForMonth InsightErrorCode = "INS-010002"
	ErrCodeInsightNotFound   InsightErrorCode = "INS-020001"
	ErrCodeAIGeneration      InsightErrorCode = "INS-030001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
