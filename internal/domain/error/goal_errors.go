// Package error defines domain-specific errors for the FIRE Plan application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNotAuthorizedToModifyGoal is returned when a user is not authorized to modify a goal.
	ErrNotAuthorizedToModifyGoal = errors.New("not authorized to modify goal")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrEmptyGoalName is returned when the goal name is missing.
	ErrEmptyGoalName = errors.New("goal name must not be empty")

	// ErrGoalNameTooLong is returned when the goal name exceeds the maximum length.
	ErrGoalNameTooLong = errors.New("goal name too long")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GLS-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeInvalidTargetAmount GoalErrorCode = "GLS-010001"
	ErrCodeEmptyGoalName       GoalErrorCode = "GLS-010002"
	ErrCodeGoalNameTooLong     GoalErrorCode = "GLS-010003"
	ErrCodeGoalNotFound        GoalErrorCode = "GLS-020001"
	ErrCodeNotAuthorizedGoal   GoalErrorCode = "GLS-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
