// Package errors provides the shared error vocabulary for check digit computation.
// Domain packages wrap these sentinels so that callers can branch on intent
// (bad input versus unsupported operation) without knowing which layer failed.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors shared by every checkdigit package.
var (
	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported indicates the requested document type or operation is not supported.
	ErrUnsupported = errors.New("unsupported")

	// ErrMismatch indicates a number carries check digits that do not match the computed ones.
	ErrMismatch = errors.New("mismatch")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
