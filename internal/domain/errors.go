package domain

import (
	"errors"
	"fmt"
)

// Error categories surfaced to callers. Repositories and services wrap
// these with %w so the HTTP boundary can match them with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Stable machine-readable error codes carried in API error responses.
const (
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeValidation         = "BUSINESS_VALIDATION_ERROR"
	CodeStorageUnavailable = "DATA_ACCESS_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// NotFoundError builds a not-found error for a resource identified by ID.
func NotFoundError(resource string, id int) error {
	return fmt.Errorf("%w: %s with ID %d", ErrNotFound, resource, id)
}

// ValidationError builds a validation error from a business-rule message.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StorageError wraps a retry-exhausted storage failure for an operation.
func StorageError(operation string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, operation, cause)
}

// ErrorCode returns the machine-readable code for an error category.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternal
	}
}
