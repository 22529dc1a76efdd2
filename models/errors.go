package models

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrOutOfStock = errors.New("Sweet is out of stock")
)

// ValidationError marks request-level failures that map to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
