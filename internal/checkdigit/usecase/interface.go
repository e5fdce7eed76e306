// Package usecase defines interfaces and implementations for check digit use cases.
// Adds input limits, verification of complete numbers, random generation, and
// concurrent batch computation on top of the stateless engine.
package usecase

import (
	"context"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
)

// CheckDigitUseCase defines the interface for check digit operations.
type CheckDigitUseCase interface {
	// Compute returns the check digits of number for the given document type.
	// Returns domain.ErrNumberTooLong when number exceeds the configured maximum length.
	Compute(ctx context.Context, documentType domain.DocumentType, number string) (*domain.Result, error)

	// Verify reports whether fullNumber ends with its correct check digits.
	// A wrong check digit is (false, nil); malformed input is an error.
	Verify(ctx context.Context, documentType domain.DocumentType, fullNumber string) (bool, error)

	// Generate returns count random valid numbers. Length is ignored by fixed-length types when 0.
	Generate(ctx context.Context, documentType domain.DocumentType, length, count int) ([]*domain.Result, error)

	// ComputeBatch computes check digits for every number concurrently. Per-number failures are
	// reported in the items; only an invalid document type or cancellation fails the batch.
	ComputeBatch(ctx context.Context, documentType domain.DocumentType, numbers []string) (*domain.BatchReport, error)
}
