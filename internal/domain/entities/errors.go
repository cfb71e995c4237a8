package entities

import "errors"

// Error kinds shared by the stores and the use cases. Specific failures wrap
// one of these with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("unauthorized")
)
