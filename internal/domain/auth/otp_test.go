//go:build unit
// +build unit

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparatePasswordAndOTP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		password string
		otp      string
		err      error
	}{
		{"valid", "Pokemon#151042133", "Pokemon#151", "042133", nil},
		{"otp not numeric", "Pokemon#151abcdef", "", "", ErrMalformedOTP},
		{"password too short", "Pk#1123456", "", "", ErrMalformedOTP},
		{"too short", "12345", "", "", ErrMalformedOTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, otp, err := SeparatePasswordAndOTP(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.password, password)
			assert.Equal(t, tt.otp, otp)
		})
	}
}
