package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the store, the use cases and the HTTP layer.
// Callers match with errors.Is; every failed operation leaves the store untouched.
var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidReference        = errors.New("invalid reference")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrValidation              = errors.New("validation error")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrIndexOutOfRange         = fmt.Errorf("index out of range: %w", ErrValidation)
)

// StockError reports which product could not cover a requested quantity.
type StockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock: product=%s available=%d, requested=%d", e.ProductID, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// Invalid builds a validation error for a single field.
func Invalid(field, reason string) error {
	return fmt.Errorf("%s %s: %w", field, reason, ErrValidation)
}
