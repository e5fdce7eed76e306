package checkdigit

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/checkdigit/internal/validation"
)

// checkFormat validates number against the numeric shape and converts a rule failure
// into a *FormatError. A zero length accepts any non-empty run of digits.
func checkFormat(field, number string, length int) error {
	err := validation.Validate(number, appvalidation.NumericDigits{Length: length})
	if err == nil {
		return nil
	}
	return &FormatError{Field: field, Reason: err.Error()}
}
