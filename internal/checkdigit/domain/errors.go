package domain

import (
	"github.com/allisson/checkdigit/internal/errors"
)

var (
	// ErrInvalidDocumentType indicates an unknown document type was requested.
	ErrInvalidDocumentType = errors.Wrap(errors.ErrUnsupported, "invalid document type")

	// ErrNumberTooLong indicates a number exceeds the configured maximum length.
	ErrNumberTooLong = errors.Wrap(errors.ErrInvalidInput, "number exceeds maximum length")

	// ErrInvalidLength indicates a generation length outside the allowed range.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid length for document type")

	// ErrTooManyNumbers indicates a request for more numbers than allowed at once.
	ErrTooManyNumbers = errors.Wrap(errors.ErrInvalidInput, "too many numbers requested")

	// ErrCheckDigitMismatch indicates the trailing check digits do not match the number.
	ErrCheckDigitMismatch = errors.Wrap(errors.ErrMismatch, "check digit mismatch")
)
