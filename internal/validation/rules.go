// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/checkdigit/internal/errors"
)

var (
	// numericRegex matches a non-empty run of ASCII decimal digits and nothing else
	numericRegex = regexp.MustCompile(`^[0-9]+$`)
)

// WrapValidationError wraps validation errors with sentinel, or ErrInvalidInput when sentinel is nil.
// Sentinels are expected to wrap ErrInvalidInput themselves.
func WrapValidationError(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if sentinel == nil {
		sentinel = apperrors.ErrInvalidInput
	}
	return apperrors.Wrap(sentinel, err.Error())
}

// IsNumeric reports whether s is a non-empty string of ASCII decimal digits.
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// NumericDigits validates that a value is a string made only of ASCII decimal digits.
// A positive Length requires exactly that many digits; zero accepts any length from one up.
// Unlike most rules in this package, an empty string is a failure, not a skip.
type NumericDigits struct {
	Length int
}

// Validate checks the value against the configured shape.
func (n NumericDigits) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_numeric_type", "must be a string")
	}

	if n.Length > 0 {
		if len(s) != n.Length || !IsNumeric(s) {
			return validation.NewError(
				"validation_numeric_length",
				fmt.Sprintf("must contain exactly %d numeric digits", n.Length),
			)
		}
		return nil
	}

	if !IsNumeric(s) {
		return validation.NewError("validation_numeric", "must contain only numeric digits")
	}
	return nil
}

// MaxDigits limits how many characters a number may carry.
func MaxDigits(max int) validation.Rule {
	return validation.Length(0, max).
		ErrorObject(validation.NewError(
			"validation_max_digits",
			fmt.Sprintf("must contain at most %d digits", max),
		))
}

// Substitute validates the character written in place of a modulo-11 remainder of ten.
// Only printable ASCII is accepted so the output remains a plain text string.
var Substitute = validation.By(func(value interface{}) error {
	c, ok := value.(byte)
	if !ok {
		return validation.NewError("validation_substitute_type", "must be a single byte")
	}
	if c < '!' || c > '~' {
		return validation.NewError("validation_substitute", "must be a printable ASCII character")
	}
	return nil
})
