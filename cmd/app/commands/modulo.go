package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/checkdigit/pkg/checkdigit"
)

// RunModulo10 prints the modulo-10 check digit of number.
func RunModulo10(logger *slog.Logger, writer io.Writer, number string) error {
	digit, err := checkdigit.Modulo10(number)
	if err != nil {
		return fmt.Errorf("failed to compute modulo 10: %w", err)
	}

	logger.Debug("modulo 10 computed", slog.String("number", number), slog.String("check_digit", digit))

	_, err = fmt.Fprintln(writer, digit)
	return err
}

// RunModulo11 prints the modulo-11 check digits of number using explicit parameters.
// The substitute must be a single character, printed in place of a remainder of 10.
func RunModulo11(
	logger *slog.Logger,
	writer io.Writer,
	number string,
	numDigits int,
	multiplierLimit int,
	timesTen bool,
	substitute string,
) error {
	if len(substitute) != 1 {
		return fmt.Errorf("substitute must be a single character, got: %q", substitute)
	}

	opts := checkdigit.Options{
		NumDigits:       numDigits,
		MultiplierLimit: multiplierLimit,
		TimesTen:        timesTen,
		TenSubstitute:   substitute[0],
	}

	digits, err := checkdigit.Modulo11WithOptions(number, opts)
	if err != nil {
		return fmt.Errorf("failed to compute modulo 11: %w", err)
	}

	logger.Debug("modulo 11 computed",
		slog.String("number", number),
		slog.Int("num_digits", numDigits),
		slog.Int("multiplier_limit", multiplierLimit),
		slog.Bool("times_ten", timesTen),
		slog.String("check_digits", digits),
	)

	_, err = fmt.Fprintln(writer, digits)
	return err
}
