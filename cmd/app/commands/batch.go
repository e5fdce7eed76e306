package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/checkdigit/internal/checkdigit/usecase"
)

// maxBatchLineLength bounds how much of a single input line is kept in memory.
const maxBatchLineLength = 64 * 1024

// truncatedSuffix marks a line cut at maxBatchLineLength. It is not numeric, so the
// line fails as its own batch item instead of being computed on a prefix.
const truncatedSuffix = "..."

// RunBatch reads one number per line from io.Reader and computes all of them concurrently.
// Blank lines are skipped. Failed numbers are reported per line and do not abort the batch.
func RunBatch(
	ctx context.Context,
	checkDigitUseCase usecase.CheckDigitUseCase,
	logger *slog.Logger,
	io IOTuple,
	documentTypeStr string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	documentType, err := parseDocumentType(documentTypeStr)
	if err != nil {
		return err
	}

	numbers, err := readNumbers(io.Reader)
	if err != nil {
		return fmt.Errorf("failed to read numbers: %w", err)
	}

	report, err := checkDigitUseCase.ComputeBatch(ctx, documentType, numbers)
	if err != nil {
		return fmt.Errorf("failed to compute batch: %w", err)
	}

	logger.Info("batch completed",
		slog.String("batch_id", report.ID.String()),
		slog.String("document_type", documentType.String()),
		slog.Int("success_count", report.SuccessCount),
		slog.Int("error_count", report.ErrorCount),
	)

	if format == "json" {
		return writeJSON(io.Writer, report)
	}

	for _, item := range report.Items {
		if item.Failed() {
			_, err = fmt.Fprintf(io.Writer, "%s error: %s\n", item.Number, item.Error)
		} else {
			_, err = fmt.Fprintf(io.Writer, "%s %s %s%s\n", item.Number, item.CheckDigits, item.Number, item.CheckDigits)
		}
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(io.Writer, "Processed %d number(s): %d succeeded, %d failed\n",
		len(report.Items), report.SuccessCount, report.ErrorCount)
	return err
}

// readNumbers returns the non-blank lines of r without their line terminators.
// Lines longer than maxBatchLineLength are truncated and marked with truncatedSuffix.
func readNumbers(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var numbers []string
	var line []byte
	truncated := false

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		if room := maxBatchLineLength - len(line); len(chunk) > room {
			chunk = chunk[:room]
			truncated = true
		}
		line = append(line, chunk...)
		if isPrefix {
			continue
		}

		number := strings.TrimRight(string(line), "\r")
		if truncated {
			number += truncatedSuffix
		}
		if number != "" {
			numbers = append(numbers, number)
		}

		line = line[:0]
		truncated = false
	}

	return numbers, nil
}
