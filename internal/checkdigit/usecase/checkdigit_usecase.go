package usecase

import (
	"context"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/checkdigit/service"
	apperrors "github.com/allisson/checkdigit/internal/errors"
	appvalidation "github.com/allisson/checkdigit/internal/validation"
)

// Limits bounds the work a single call may request.
type Limits struct {
	MaxNumberLength  int
	BatchConcurrency int
	GenerateMaxCount int
}

// DefaultLimits mirrors the configuration defaults.
var DefaultLimits = Limits{
	MaxNumberLength:  domain.DefaultMaxNumberLength,
	BatchConcurrency: 8,
	GenerateMaxCount: 1000,
}

// checkDigitUseCase implements CheckDigitUseCase.
type checkDigitUseCase struct {
	limits Limits
}

// NewCheckDigitUseCase creates a CheckDigitUseCase. Non-positive limits fall back to DefaultLimits.
func NewCheckDigitUseCase(limits Limits) CheckDigitUseCase {
	if limits.MaxNumberLength <= 0 {
		limits.MaxNumberLength = DefaultLimits.MaxNumberLength
	}
	if limits.BatchConcurrency <= 0 {
		limits.BatchConcurrency = DefaultLimits.BatchConcurrency
	}
	if limits.GenerateMaxCount <= 0 {
		limits.GenerateMaxCount = DefaultLimits.GenerateMaxCount
	}
	return &checkDigitUseCase{limits: limits}
}

// Compute validates the document type and length limit, then delegates to the calculator.
func (c *checkDigitUseCase) Compute(
	ctx context.Context,
	documentType domain.DocumentType,
	number string,
) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	calc, err := service.NewCalculator(documentType)
	if err != nil {
		return nil, err
	}

	return c.compute(calc, documentType, number)
}

func (c *checkDigitUseCase) compute(
	calc service.Calculator,
	documentType domain.DocumentType,
	number string,
) (*domain.Result, error) {
	if err := c.checkLength(number); err != nil {
		return nil, err
	}

	digits, err := calc.Calculate(number)
	if err != nil {
		return nil, err
	}

	return domain.NewResult(documentType, number, digits), nil
}

// Verify recomputes the trailing check digits of fullNumber.
func (c *checkDigitUseCase) Verify(
	ctx context.Context,
	documentType domain.DocumentType,
	fullNumber string,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	calc, err := service.NewCalculator(documentType)
	if err != nil {
		return false, err
	}

	// The limit applies to the base number, as in Compute.
	base := fullNumber
	if checkLength := documentType.CheckLength(); len(fullNumber) > checkLength {
		base = fullNumber[:len(fullNumber)-checkLength]
	}
	if err := c.checkLength(base); err != nil {
		return false, err
	}

	if err := calc.Validate(fullNumber); err != nil {
		if apperrors.Is(err, domain.ErrCheckDigitMismatch) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Generate creates count random numbers, each with valid check digits.
// The base length is bounded by MaxNumberLength so every result passes Compute and Verify.
func (c *checkDigitUseCase) Generate(
	ctx context.Context,
	documentType domain.DocumentType,
	length, count int,
) ([]*domain.Result, error) {
	calc, err := service.NewCalculator(documentType)
	if err != nil {
		return nil, err
	}

	if count < 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "count must be at least 1")
	}
	if count > c.limits.GenerateMaxCount {
		return nil, apperrors.Wrapf(domain.ErrTooManyNumbers, "count must not exceed %d", c.limits.GenerateMaxCount)
	}

	baseLength := length
	if baseLength == 0 && documentType.IsFixedLength() {
		baseLength = documentType.BaseLength()
	}
	if baseLength > c.limits.MaxNumberLength {
		return nil, apperrors.Wrapf(domain.ErrInvalidLength, "length must not exceed %d", c.limits.MaxNumberLength)
	}

	checkLength := documentType.CheckLength()
	results := make([]*domain.Result, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full, err := calc.Generate(length)
		if err != nil {
			return nil, err
		}

		split := len(full) - checkLength
		results = append(results, domain.NewResult(documentType, full[:split], full[split:]))
	}

	return results, nil
}

// ComputeBatch fans the numbers out over at most BatchConcurrency goroutines.
func (c *checkDigitUseCase) ComputeBatch(
	ctx context.Context,
	documentType domain.DocumentType,
	numbers []string,
) (*domain.BatchReport, error) {
	calc, err := service.NewCalculator(documentType)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	items := make([]domain.BatchItem, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limits.BatchConcurrency)

	for i, number := range numbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item := domain.BatchItem{Index: i, Number: number}
			result, err := c.compute(calc, documentType, number)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.CheckDigits = result.CheckDigits
			}
			items[i] = item

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.BatchReport{
		ID:           id,
		DocumentType: documentType,
		Items:        items,
	}
	for _, item := range items {
		if item.Failed() {
			report.ErrorCount++
		} else {
			report.SuccessCount++
		}
	}

	return report, nil
}

// checkLength enforces the configured maximum number length.
func (c *checkDigitUseCase) checkLength(number string) error {
	err := validation.Validate(number, appvalidation.MaxDigits(c.limits.MaxNumberLength))
	return appvalidation.WrapValidationError(err, domain.ErrNumberTooLong)
}
