/*
Package checkdigit computes check digits for Brazilian identification and banking numbers.

Every function is a pure computation over a string of ASCII decimal digits: no state is
kept between calls, so all of them are safe for concurrent use.

# Algorithms

Two weighted-sum routines back every document type:

  - Modulo10: right-to-left weights alternating 2, 1, 2, 1... Each product contributes
    (n * weight) % 9 to the sum, and the digit is (10 - sum % 10) % 10.
  - Modulo11: right-to-left weights 2, 3, ... up to a multiplier limit, then back to 2.
    The sum is optionally multiplied by ten, reduced modulo 11, and a remainder of ten is
    written as a substitute character. When several digits are requested, each new digit
    is computed over the number including the digits already appended.

Both formulas are kept literally. Modulo10 is not a textbook Luhn: a 9 in a doubled
position contributes 0 instead of 9.

# Document Types

	CPF             9 digits  -> 2 check digits (limit 12)
	CNPJ            12 digits -> 1 check digit
	CNPJFull        12 digits -> 2 check digits
	PIS             10 digits -> 1 check digit
	RGSP            1+ digits -> 1 check digit (sum not multiplied by ten)
	AgenciaBB       4 digits  -> 1 check digit, 'X' for ten
	ContaCorrenteBB 1+ digits -> 1 check digit, 'X' for ten

# Usage

	digits, err := checkdigit.CPF("345678123")
	if err != nil {
	    // errors.Is(err, checkdigit.ErrInvalidFormat) == true
	}
	// digits == "79"

Custom modulo-11 schemes use Modulo11WithOptions:

	dv, err := checkdigit.Modulo11WithOptions("0123", checkdigit.Options{
	    NumDigits:       1,
	    MultiplierLimit: 9,
	    TimesTen:        true,
	    TenSubstitute:   'X',
	})

Inputs are never trimmed or reformatted. Masks such as "345.678.123" are rejected.
*/
package checkdigit
