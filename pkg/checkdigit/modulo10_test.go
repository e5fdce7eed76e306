package checkdigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulo10(t *testing.T) {
	tests := []struct {
		name          string
		numero        string
		expectedDigit string
		expectError   bool
	}{
		{name: "Success_CardNumber", numero: "4012888888881881", expectedDigit: "3"},
		{name: "Success_LuhnSample", numero: "7992739871", expectedDigit: "0"},
		{name: "Success_Short", numero: "123", expectedDigit: "0"},
		{name: "Success_NineDoubledContributesZero", numero: "9", expectedDigit: "0"},
		{name: "Success_NineUndoubled", numero: "19", expectedDigit: "9"},
		{name: "Success_Zero", numero: "0", expectedDigit: "0"},
		{name: "Error_Empty", numero: "", expectError: true},
		{name: "Error_Letters", numero: "12a4", expectError: true},
		{name: "Error_Spaces", numero: "4012 8888", expectError: true},
		{name: "Error_Negative", numero: "-12", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, err := Modulo10(tt.numero)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				assert.Empty(t, digit)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedDigit, digit)
		})
	}
}

// The weighted sum uses (n*2)%9, so a doubled 9 adds nothing where Luhn would add 9.
func TestModulo10_DiffersFromLuhnOnDoubledNine(t *testing.T) {
	digit, err := Modulo10("9")
	require.NoError(t, err)

	luhn := (10 - (9*2-9)%10) % 10
	assert.Equal(t, 1, luhn)
	assert.Equal(t, "0", digit)
}

func TestModulo10_AlwaysSingleDigit(t *testing.T) {
	for i := 0; i < 1000; i++ {
		numero := padDigits(i, 3)
		digit, err := Modulo10(numero)
		require.NoError(t, err)
		require.Len(t, digit, 1)
		assert.True(t, digit[0] >= '0' && digit[0] <= '9', "unexpected digit %q for %s", digit, numero)
	}
}
