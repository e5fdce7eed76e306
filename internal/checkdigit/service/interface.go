// Package service provides check digit calculators for each supported document type.
// Calculators compute check digits, verify complete numbers, and generate random valid numbers.
package service

// Calculator defines the interface for a check digit scheme.
type Calculator interface {
	// Calculate returns the check digits of a number given without them.
	Calculate(number string) (string, error)

	// Validate checks that a complete number ends with its correct check digits.
	Validate(fullNumber string) error

	// Generate returns a random complete number. Fixed-length schemes accept a length
	// of 0 or their base length; the others require 1 to domain.MaxGenerateLength.
	Generate(length int) (string, error)
}
