package shopping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation errors for the add path.
var (
	ErrBlankName       = errors.New("item name cannot be blank")
	ErrInvalidQuantity = errors.New("quantity must be a whole number")
)

// DefaultEditQty is used when the edit form's quantity text cannot be parsed.
const DefaultEditQty = 1

// ValidationError is returned when an add is refused.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

// ParseQuantity parses quantity text strictly. Used by the add path.
func ParseQuantity(text string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ValidationError{Field: "qty", Value: text, Err: ErrInvalidQuantity}
	}
	return qty, nil
}

// ParseQuantityOrDefault parses quantity text, falling back to DefaultEditQty.
// Used by the edit path.
func ParseQuantityOrDefault(text string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return DefaultEditQty
	}
	return qty
}
