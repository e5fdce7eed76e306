package checkdigit

import "strconv"

// Modulo10 returns the modulo-10 check digit of numero.
//
// Weights alternate 2, 1 from the rightmost digit and each product contributes
// (n * weight) % 9 to the sum.
func Modulo10(numero string) (string, error) {
	if err := checkFormat("number", numero, 0); err != nil {
		return "", err
	}

	sum := 0
	mult := 2
	for i := len(numero) - 1; i >= 0; i-- {
		n := int(numero[i] - '0')
		sum += (n * mult) % 9
		mult = 3 - mult
	}

	return strconv.Itoa((10 - sum%10) % 10), nil
}
