package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomDigits returns a cryptographically random string of length decimal digits.
func randomDigits(length int) (string, error) {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		//nolint:gosec // n is bounded [0,9] by big.NewInt(10), safe conversion
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
