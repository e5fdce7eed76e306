package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/checkdigit/internal/checkdigit/usecase"
)

// RunGenerate prints count random numbers with valid check digits.
// A length of 0 selects the natural length of fixed-length document types.
func RunGenerate(
	ctx context.Context,
	checkDigitUseCase usecase.CheckDigitUseCase,
	logger *slog.Logger,
	writer io.Writer,
	documentTypeStr string,
	length int,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	documentType, err := parseDocumentType(documentTypeStr)
	if err != nil {
		return err
	}

	results, err := checkDigitUseCase.Generate(ctx, documentType, length, count)
	if err != nil {
		return fmt.Errorf("failed to generate numbers: %w", err)
	}

	logger.Debug("numbers generated",
		slog.String("document_type", documentType.String()),
		slog.Int("count", len(results)),
	)

	if format == "json" {
		return writeJSON(writer, results)
	}

	for _, result := range results {
		if _, err := fmt.Fprintln(writer, result.Full); err != nil {
			return err
		}
	}

	return nil
}
