package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for travel planner errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Transcription error codes
const (
	TRANSCRIBE_FAILED       ErrorCode = "TRANSCRIBE_FAILED"
	TRANSCRIBE_FILE_MISSING ErrorCode = "TRANSCRIBE_FILE_MISSING"
)

// Extraction error codes
const (
	EXTRACT_PARSE_FAILED      ErrorCode = "EXTRACT_PARSE_FAILED"
	EXTRACT_VALIDATION_FAILED ErrorCode = "EXTRACT_VALIDATION_FAILED"
)

// Search error codes
const (
	SEARCH_PROVIDER_FAILED       ErrorCode = "SEARCH_PROVIDER_FAILED"
	SEARCH_ALL_CATEGORIES_FAILED ErrorCode = "SEARCH_ALL_CATEGORIES_FAILED"
)

// Synthesis and rendering error codes
const (
	SYNTHESIS_FAILED ErrorCode = "SYNTHESIS_FAILED"
	RENDER_FAILED    ErrorCode = "RENDER_FAILED"
)

// Wizard error codes
const (
	WIZARD_VALIDATION_FAILED  ErrorCode = "WIZARD_VALIDATION_FAILED"
	WIZARD_INVALID_TRANSITION ErrorCode = "WIZARD_INVALID_TRANSITION"
)

// PlannerError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints for
// error handling logic.
type PlannerError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *PlannerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *PlannerError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
func (e *PlannerError) Is(target error) bool {
	var plannerErr *PlannerError
	if errors.As(target, &plannerErr) {
		return e.Code == plannerErr.Code
	}
	return false
}

// NewError creates a new non-retryable PlannerError with the given code and message.
func NewError(code ErrorCode, message string) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
	}
}

// NewRetryableError creates a new retryable PlannerError with the given code
// and message. Use this for transient errors that may succeed on retry.
func NewRetryableError(code ErrorCode, message string) *PlannerError {
	return &PlannerError{
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

// WrapError creates a new non-retryable PlannerError that wraps an existing
// error. The wrapped error is accessible via Unwrap() for chain inspection.
func WrapError(code ErrorCode, message string, cause error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapRetryableError creates a new retryable PlannerError that wraps an
// existing error.
func WrapRetryableError(code ErrorCode, message string, cause error) *PlannerError {
	return &PlannerError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     cause,
	}
}

// ErrorCodeOf extracts the ErrorCode from an error chain, or returns the
// empty string when the chain contains no PlannerError.
func ErrorCodeOf(err error) ErrorCode {
	var plannerErr *PlannerError
	if errors.As(err, &plannerErr) {
		return plannerErr.Code
	}
	return ""
}
