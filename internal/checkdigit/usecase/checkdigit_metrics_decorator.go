package usecase

import (
	"context"
	"time"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/metrics"
)

// checkDigitUseCaseWithMetrics decorates CheckDigitUseCase with metrics instrumentation.
type checkDigitUseCaseWithMetrics struct {
	next    CheckDigitUseCase
	metrics metrics.BusinessMetrics
}

// NewCheckDigitUseCaseWithMetrics wraps a CheckDigitUseCase with metrics recording.
func NewCheckDigitUseCaseWithMetrics(
	useCase CheckDigitUseCase,
	m metrics.BusinessMetrics,
) CheckDigitUseCase {
	return &checkDigitUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *checkDigitUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	documentType domain.DocumentType,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, operation, documentType.String(), status)
	c.metrics.RecordDuration(ctx, operation, documentType.String(), time.Since(start), status)
}

// Compute records metrics for check digit computation.
func (c *checkDigitUseCaseWithMetrics) Compute(
	ctx context.Context,
	documentType domain.DocumentType,
	number string,
) (*domain.Result, error) {
	start := time.Now()
	result, err := c.next.Compute(ctx, documentType, number)
	c.record(ctx, "compute", documentType, start, err)
	return result, err
}

// Verify records metrics for verification. A mismatch is a successful operation.
func (c *checkDigitUseCaseWithMetrics) Verify(
	ctx context.Context,
	documentType domain.DocumentType,
	fullNumber string,
) (bool, error) {
	start := time.Now()
	valid, err := c.next.Verify(ctx, documentType, fullNumber)
	c.record(ctx, "verify", documentType, start, err)
	return valid, err
}

// Generate records metrics for number generation.
func (c *checkDigitUseCaseWithMetrics) Generate(
	ctx context.Context,
	documentType domain.DocumentType,
	length, count int,
) ([]*domain.Result, error) {
	start := time.Now()
	results, err := c.next.Generate(ctx, documentType, length, count)
	c.record(ctx, "generate", documentType, start, err)
	return results, err
}

// ComputeBatch records metrics for the batch and per-item outcome counts.
func (c *checkDigitUseCaseWithMetrics) ComputeBatch(
	ctx context.Context,
	documentType domain.DocumentType,
	numbers []string,
) (*domain.BatchReport, error) {
	start := time.Now()
	report, err := c.next.ComputeBatch(ctx, documentType, numbers)
	c.record(ctx, "compute_batch", documentType, start, err)

	if report != nil {
		if report.SuccessCount > 0 {
			c.metrics.RecordBatchItems(ctx, documentType.String(), "success", report.SuccessCount)
		}
		if report.ErrorCount > 0 {
			c.metrics.RecordBatchItems(ctx, documentType.String(), "error", report.ErrorCount)
		}
	}

	return report, err
}
