package checkdigit

import (
	"fmt"

	apperrors "github.com/allisson/checkdigit/internal/errors"
)

var (
	// ErrInvalidFormat indicates a number does not have the shape an operation requires.
	ErrInvalidFormat = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid format")

	// ErrInvalidOptions indicates modulo-11 parameters outside their contract.
	ErrInvalidOptions = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid modulo 11 options")
)

// FormatError describes why a number was rejected. It always matches ErrInvalidFormat.
type FormatError struct {
	// Field names the number being checked, such as "cpf number".
	Field string
	// Reason is the expected shape, such as "must contain exactly 9 numeric digits".
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap exposes ErrInvalidFormat to errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
