package service

import (
	"fmt"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/errors"
)

// computeFunc is the engine entry point for one document type.
type computeFunc func(number string) (string, error)

type calculator struct {
	documentType domain.DocumentType
	compute      computeFunc
}

func newCalculator(documentType domain.DocumentType, compute computeFunc) Calculator {
	return &calculator{
		documentType: documentType,
		compute:      compute,
	}
}

// Calculate delegates to the engine, which validates the number's shape.
func (c *calculator) Calculate(number string) (string, error) {
	return c.compute(number)
}

// Validate splits the trailing check digits off fullNumber and recomputes them.
// Shape errors come from the engine; a wrong check digit yields domain.ErrCheckDigitMismatch.
func (c *calculator) Validate(fullNumber string) error {
	checkLength := c.documentType.CheckLength()

	base, given := "", ""
	if len(fullNumber) > checkLength {
		base = fullNumber[:len(fullNumber)-checkLength]
		given = fullNumber[len(fullNumber)-checkLength:]
	}

	expected, err := c.compute(base)
	if err != nil {
		return err
	}

	if expected != given {
		return errors.Wrap(
			domain.ErrCheckDigitMismatch,
			fmt.Sprintf("expected %s, got %s", expected, given),
		)
	}

	return nil
}

// Generate creates a random base number and appends its check digits.
func (c *calculator) Generate(length int) (string, error) {
	length, err := c.generateLength(length)
	if err != nil {
		return "", err
	}

	base, err := randomDigits(length)
	if err != nil {
		return "", err
	}

	digits, err := c.compute(base)
	if err != nil {
		return "", err
	}

	return base + digits, nil
}

func (c *calculator) generateLength(length int) (int, error) {
	if c.documentType.IsFixedLength() {
		baseLength := c.documentType.BaseLength()
		if length != 0 && length != baseLength {
			return 0, errors.Wrapf(
				domain.ErrInvalidLength,
				"%s numbers have exactly %d digits",
				c.documentType,
				baseLength,
			)
		}
		return baseLength, nil
	}

	if length < 1 {
		return 0, errors.Wrap(domain.ErrInvalidLength, "length must be at least 1")
	}
	if length > domain.MaxGenerateLength {
		return 0, errors.Wrapf(domain.ErrInvalidLength, "length must not exceed %d", domain.MaxGenerateLength)
	}
	return length, nil
}
