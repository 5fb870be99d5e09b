package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error kinds raised by the room core. Every failure that reaches the HTTP
// boundary is marked with exactly one of these.
var (
	ErrNotFound    = new(ErrCodeNotFound, "resource not found")
	ErrInvalidData = new(ErrCodeInvalidData, "invalid data")
	ErrInvalidID   = new(ErrCodeInvalidID, "invalid id")

	ErrValidation    = new(ErrCodeValidation, "validation error")
	ErrAlreadyExists = new(ErrCodeAlreadyExists, "resource already exists")
	ErrDatabase      = new(ErrCodeDatabase, "database error")
	ErrSystem        = new(ErrCodeSystemError, "system error")

	// statusCodes is checked in order so an error carrying more than one
	// marker always maps to the same status.
	statusCodes = []struct {
		marker error
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidID, http.StatusBadRequest},
		{ErrInvalidData, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrSystem, http.StatusInternalServerError},
	}
)

const (
	ErrCodeNotFound      = "not_found"
	ErrCodeInvalidData   = "invalid_data"
	ErrCodeInvalidID     = "invalid_id"
	ErrCodeValidation    = "validation_error"
	ErrCodeAlreadyExists = "already_exists"
	ErrCodeDatabase      = "database_error"
	ErrCodeSystemError   = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidData checks if an error is an invalid data error
func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData)
}

// IsInvalidID checks if an error is an invalid id error
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}

// IsValidation checks if an error is a request validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// IsCoreKind reports whether err already carries one of the three kinds the
// room core raises.
func IsCoreKind(err error) bool {
	return IsNotFound(err) || IsInvalidData(err) || IsInvalidID(err)
}

func HTTPStatusFromErr(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.marker) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}

// DisplayMessage returns the message shown to API clients: the first hint
// attached to err, or an empty string when there is none.
func DisplayMessage(err error) string {
	for _, hint := range errors.GetAllHints(err) {
		if hint != "" {
			return hint
		}
	}
	return ""
}
