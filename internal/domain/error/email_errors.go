// Package error defines domain-specific errors for the FIRE Plan application.
package error

import "errors"

// Email domain errors.
var (
	// ErrInvalidTemplate is returned when an email job references an unknown template.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailQueueFailed is returned when an email job could not be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrEmailJobNotFound is returned when an email job is not found in the queue.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	ErrCodeInvalidTemplate       EmailErrorCode = "EML-010001"
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-030001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
