package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "not found"
	// ValidationErrorMessage describes rejected caller input.
	ValidationErrorMessage = "invalid planning criteria"
	// CatalogErrorMessage describes a catalog snapshot that could not be loaded.
	CatalogErrorMessage = "catalog snapshot unavailable"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Wrap creates an internal AppError with the given safe message.
func Wrap(err error, message string) *AppError {
	return New(err, http.StatusInternalServerError, message)
}

// NewValidation wraps a caller contract violation (negative guest count,
// non-positive budget). Distinct from a "no match" outcome, which is not an
// error at all.
func NewValidation(err error) *AppError {
	return New(err, http.StatusBadRequest, ValidationErrorMessage)
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ae *AppError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusBadRequest && ae.Message == ValidationErrorMessage
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
