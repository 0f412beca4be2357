// Package errors provides the standardized error taxonomy for the matching engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Validation errors: malformed or out-of-range caller input.
	ErrCodeInvalidNakshatra     ErrorCode = "INVALID_NAKSHATRA_ID"
	ErrCodeInvalidGender        ErrorCode = "INVALID_GENDER"
	ErrCodeInvalidQualification ErrorCode = "INVALID_QUALIFICATION"
	ErrCodeInvalidRegion        ErrorCode = "INVALID_REGION"
	ErrCodeInvalidIncome        ErrorCode = "INVALID_INCOME"
	ErrCodeInvalidSeekerAge     ErrorCode = "INVALID_SEEKER_AGE"
	ErrCodeMissingSeekerRasi    ErrorCode = "MISSING_SEEKER_RASI"

	// Lookup errors.
	ErrCodeProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"

	// Degradations: the engine keeps serving on a reduced data set.
	ErrCodeTableLoadFailed    ErrorCode = "TABLE_LOAD_FAILED"
	ErrCodeSnapshotLoadFailed ErrorCode = "SNAPSHOT_LOAD_FAILED"
)

// EngineError is a structured application error. Field is populated for
// validation errors and names the offending input parameter.
type EngineError struct {
	Code      ErrorCode `json:"code"`
	Field     string    `json:"field,omitempty"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EngineError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("EngineError[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("EngineError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a validation error for the named field.
func NewValidationError(code ErrorCode, field, message string) *EngineError {
	return &EngineError{
		Code:      code,
		Field:     field,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError creates a not-found error for an unknown seeker id.
func NewProfileNotFoundError(profileID string) *EngineError {
	return &EngineError{
		Code:      ErrCodeProfileNotFound,
		Message:   "seeker profile not found",
		Details:   fmt.Sprintf("profileId: %s", profileID),
		Timestamp: time.Now().UTC(),
	}
}

// NewTableLoadError records a compatibility table that failed to load.
// Callers degrade to an empty table rather than failing the request.
func NewTableLoadError(name string, err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeTableLoadFailed,
		Message:   "compatibility table failed to load",
		Details:   fmt.Sprintf("table: %s, error: %v", name, err),
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotLoadError records a profile snapshot that failed to load.
// Callers degrade to an empty snapshot rather than failing the request.
func NewSnapshotLoadError(err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeSnapshotLoadFailed,
		Message:   "profile snapshot failed to load",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// IsValidation reports whether err carries a validation error code.
func IsValidation(err error) bool {
	var ee *EngineError
	if !stderrors.As(err, &ee) {
		return false
	}
	switch ee.Code {
	case ErrCodeInvalidNakshatra,
		ErrCodeInvalidGender,
		ErrCodeInvalidQualification,
		ErrCodeInvalidRegion,
		ErrCodeInvalidIncome,
		ErrCodeInvalidSeekerAge,
		ErrCodeMissingSeekerRasi:
		return true
	}
	return false
}

// IsNotFound reports whether err is a profile lookup failure.
func IsNotFound(err error) bool {
	var ee *EngineError
	return stderrors.As(err, &ee) && ee.Code == ErrCodeProfileNotFound
}

// FieldOf returns the offending field name for validation errors, or "".
func FieldOf(err error) string {
	var ee *EngineError
	if stderrors.As(err, &ee) {
		return ee.Field
	}
	return ""
}
