package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/checkdigit/usecase"
)

// RunCompute prints the check digits of every number for the given document type.
// Stops at the first number that cannot be computed.
func RunCompute(
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

	logger.Debug("computing check digits",
		slog.String("document_type", documentType.String()),
		slog.Int("count", len(numbers)),
	)

	results := make([]*domain.Result, 0, len(numbers))
	for _, number := range numbers {
		result, err := checkDigitUseCase.Compute(ctx, documentType, number)
		if err != nil {
			return fmt.Errorf("failed to compute check digits for %q: %w", number, err)
		}
		results = append(results, result)
	}

	if format == "json" {
		return writeJSON(writer, results)
	}

	for _, result := range results {
		if _, err := fmt.Fprintf(writer, "%s %s %s\n", result.Number, result.CheckDigits, result.Full); err != nil {
			return err
		}
	}

	return nil
}
