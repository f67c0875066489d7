package service

import (
	"errors"
	"fmt"
)

// BatchErrorCode classifies assignment failures for callers.
type BatchErrorCode string

const (
	// ErrCodeValidation marks a request rejected before any mutation.
	ErrCodeValidation BatchErrorCode = "validation"
	// ErrCodeAlreadyImported marks a disallowed revert of an imported batch.
	ErrCodeAlreadyImported BatchErrorCode = "already_imported"
	// ErrCodeNotFound marks a reference to a batch id that does not exist.
	ErrCodeNotFound BatchErrorCode = "not_found"
	// ErrCodeInternal marks a persistence failure. The whole call is safe to
	// retry because assignment mutations are atomic.
	ErrCodeInternal BatchErrorCode = "internal"
)

// BatchError is the structured error returned by the assignment engine. All
// collaborator failures are translated into one of these at the service
// boundary; raw persistence errors never reach callers.
type BatchError struct {
	Code    BatchErrorCode
	Message string
	cause   error
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *BatchError) Unwrap() error {
	return e.cause
}

// NewBatchError creates a BatchError with the given code and message.
func NewBatchError(code BatchErrorCode, message string) *BatchError {
	return &BatchError{Code: code, Message: message}
}

// WrapBatchError creates a BatchError that preserves the triggering error.
func WrapBatchError(code BatchErrorCode, message string, cause error) *BatchError {
	return &BatchError{Code: code, Message: message, cause: cause}
}

// ErrorCode extracts the BatchErrorCode from err, defaulting to
// ErrCodeInternal for anything that is not a BatchError.
func ErrorCode(err error) BatchErrorCode {
	var be *BatchError
	if errors.As(err, &be) {
		return be.Code
	}
	return ErrCodeInternal
}
