package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/checkdigit/internal/checkdigit/usecase"
)

// verification is the per-number outcome written by RunVerify.
type verification struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

// RunVerify checks the trailing check digits of every number.
// Returns ErrVerificationFailed after printing all outcomes if any number is invalid.
func RunVerify(
	ctx context.Context,
	checkDigitUseCase usecase.CheckDigitUseCase,
	logger *slog.Logger,
	writer io.Writer,
	documentTypeStr string,
	numbers []string,
	format string,
) error {
	if len(numbers) == 0 {
		return fmt.Errorf("at least one number is required")
	}

	if err := validateFormat(format); err != nil {
		return err
	}

	documentType, err := parseDocumentType(documentTypeStr)
	if err != nil {
		return err
	}

	outcomes := make([]verification, 0, len(numbers))
	invalid := 0
	for _, number := range numbers {
		valid, err := checkDigitUseCase.Verify(ctx, documentType, number)
		if err != nil {
			return fmt.Errorf("failed to verify %q: %w", number, err)
		}
		if !valid {
			invalid++
		}
		outcomes = append(outcomes, verification{Number: number, Valid: valid})
	}

	if format == "json" {
		if err := writeJSON(writer, outcomes); err != nil {
			return err
		}
	} else {
		for _, outcome := range outcomes {
			status := "valid"
			if !outcome.Valid {
				status = "invalid"
			}
			if _, err := fmt.Fprintf(writer, "%s %s\n", outcome.Number, status); err != nil {
				return err
			}
		}
	}

	logger.Debug("verification completed",
		slog.String("document_type", documentType.String()),
		slog.Int("count", len(numbers)),
		slog.Int("invalid", invalid),
	)

	if invalid > 0 {
		return ErrVerificationFailed
	}

	return nil
}
