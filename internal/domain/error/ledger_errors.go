// Package error defines domain-specific errors for the FIRE Plan application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found in the system.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrNotAuthorizedToModifyEntry is returned when a user is not authorized to modify an entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify ledger entry")

	// ErrInvalidEntryKind is returned when the entry kind is invalid.
	ErrInvalidEntryKind = errors.New("invalid entry kind")

	// ErrInvalidEntryCategory is returned when the entry category is not a known tag.
	ErrInvalidEntryCategory = errors.New("invalid entry category")

	// ErrInvalidEntryAmount is returned when the entry amount is not positive.
	ErrInvalidEntryAmount = errors.New("entry amount must be greater than zero")

	// ErrInvalidEntryDate is returned when the entry date is missing or invalid.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrEmptyDescription is returned when the description is missing.
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidMonth is returned when a month parameter cannot be parsed.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrEndDateOnOneOff is returned when a one-off entry carries an end date.
	ErrEndDateOnOneOff = errors.New("one-off entries cannot have an end date")

	// ErrEndDateBeforeStart is returned when an end date precedes the entry's start date.
	ErrEndDateBeforeStart = errors.New("end date precedes start date")

	// ErrEntryNotOpenRecurring is returned when a rate change targets an entry
	// that is not an open-ended recurring entry.
	ErrEntryNotOpenRecurring = errors.New("entry is not an open recurring entry")

	// ErrRateChangeTooEarly is returned when a rate change's effective month is
	// not strictly after the entry's start month.
	ErrRateChangeTooEarly = errors.New("effective date must be at least one month after the entry start")

	// ErrRateChangePartialFailure is returned when the closing update succeeded
	// but creating the successor entry failed, leaving a closed entry with no
	// successor in the ledger.
	ErrRateChangePartialFailure = errors.New("rate change partially applied: entry closed but successor not created")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryKind     LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidEntryCategory LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidEntryAmount   LedgerErrorCode = "LDG-010003"
	ErrCodeEmptyDescription     LedgerErrorCode = "LDG-010004"
	ErrCodeDescriptionTooLong   LedgerErrorCode = "LDG-010005"
	ErrCodeInvalidEntryDate     LedgerErrorCode = "LDG-010006"
	ErrCodeInvalidMonth         LedgerErrorCode = "LDG-010007"
	ErrCodeEndDateOnOneOff      LedgerErrorCode = "LDG-010008"
	ErrCodeEndDateBeforeStart   LedgerErrorCode = "LDG-010009"
	ErrCodeMissingEntryFields   LedgerErrorCode = "LDG-010010"

	// Lookup/authorization errors (02XXXX)
	ErrCodeEntryNotFound      LedgerErrorCode = "LDG-020001"
	ErrCodeNotAuthorizedEntry LedgerErrorCode = "LDG-020002"

	// Rate-change errors (03XXXX)
	ErrCodeEntryNotOpenRecurring   LedgerErrorCode = "LDG-030001"
	ErrCodeRateChangeTooEarly      LedgerErrorCode = "LDG-030002"
	ErrCodeRateChangeCloseFailed   LedgerErrorCode = "LDG-030003"
	ErrCodeRateChangePartialFailed LedgerErrorCode = "LDG-030004"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
