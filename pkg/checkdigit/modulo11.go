package checkdigit

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/checkdigit/internal/validation"
)

// Options parameterizes the modulo-11 routine.
type Options struct {
	// NumDigits is how many check digits to compute, from 1 to MaxNumDigits.
	NumDigits int
	// MultiplierLimit is the largest weight before it wraps back to 2. Must be at least 3.
	MultiplierLimit int
	// TimesTen multiplies the weighted sum by ten before taking the remainder.
	TimesTen bool
	// TenSubstitute is written when the remainder is ten. Zero means '0'.
	TenSubstitute byte
}

// MaxNumDigits is the largest Options.NumDigits accepted.
const MaxNumDigits = 255

// DefaultOptions are the parameters used by Modulo11.
var DefaultOptions = Options{
	NumDigits:       1,
	MultiplierLimit: 9,
	TimesTen:        true,
	TenSubstitute:   '0',
}

// Validate checks the options against the modulo-11 parameter contract.
func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.NumDigits, validation.Required, validation.Min(1), validation.Max(MaxNumDigits)),
		validation.Field(&o.MultiplierLimit, validation.Required, validation.Min(3)),
		validation.Field(&o.TenSubstitute, validation.When(o.TenSubstitute != 0, appvalidation.Substitute)),
	)
	return appvalidation.WrapValidationError(err, ErrInvalidOptions)
}

// Modulo11 returns one modulo-11 check digit of numero using DefaultOptions.
func Modulo11(numero string) (string, error) {
	return Modulo11WithOptions(numero, DefaultOptions)
}

// Modulo11N returns numDigits modulo-11 check digits of numero, writing '0' for a
// remainder of ten.
func Modulo11N(numero string, numDigits, multiplierLimit int, timesTen bool) (string, error) {
	return Modulo11WithOptions(numero, Options{
		NumDigits:       numDigits,
		MultiplierLimit: multiplierLimit,
		TimesTen:        timesTen,
		TenSubstitute:   '0',
	})
}

// Modulo11WithOptions returns opts.NumDigits modulo-11 check digits of numero.
//
// Each digit is computed over numero followed by the digits computed before it. When more
// than one digit is requested the remainder is reduced modulo 10, so the substitute only
// ever appears in single-digit results.
func Modulo11WithOptions(numero string, opts Options) (string, error) {
	if err := checkFormat("number", numero, 0); err != nil {
		return "", err
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.TenSubstitute == 0 {
		opts.TenSubstitute = '0'
	}

	return modulo11(numero, opts), nil
}

// modulo11 assumes numero and opts are already validated.
func modulo11(numero string, opts Options) string {
	work := make([]byte, len(numero), len(numero)+opts.NumDigits)
	copy(work, numero)

	for x := 0; x < opts.NumDigits; x++ {
		mult := 2
		sum := 0

		for i := len(work) - 1; i >= 0; i-- {
			sum += int(work[i]-'0') * mult
			mult = (mult-1)%(opts.MultiplierLimit-1) + 2
		}

		if opts.TimesTen {
			sum *= 10
		}

		remainder := sum % 11
		if opts.NumDigits > 1 {
			remainder %= 10
		}

		if remainder == 10 {
			work = append(work, opts.TenSubstitute)
		} else {
			work = append(work, byte('0'+remainder))
		}
	}

	return string(work[len(numero):])
}
