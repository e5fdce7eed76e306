// Package commands contains CLI command implementations for the application.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
)

// ErrVerificationFailed is returned when at least one number carries wrong check digits.
var ErrVerificationFailed = errors.New("one or more numbers failed verification")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseDocumentType converts a --type value into a domain.DocumentType.
// Returns an error listing the valid options if the value is unknown.
func parseDocumentType(value string) (domain.DocumentType, error) {
	documentType, err := domain.ParseDocumentType(value)
	if err != nil {
		names := make([]string, 0, len(domain.DocumentTypes()))
		for _, t := range domain.DocumentTypes() {
			names = append(names, t.String())
		}
		return "", fmt.Errorf("%w (valid options: %s)", err, strings.Join(names, ", "))
	}
	return documentType, nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
