package auth

import (
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/strutil"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// OTPLength is the number of digits of a TOTP code
const OTPLength = 6

// SeparatePasswordAndOTP splits an input of the form <password><6 digit otp>.
// The password part has to keep the minimum password length.
func SeparatePasswordAndOTP(input string) (string, string, error) {
	password, code, ok := strutil.SplitLast(input, OTPLength)
	if !ok || !strutil.IsDigits(code) || len([]rune(password)) < validators.PasswordMinLength {
		return "", "", ErrMalformedOTP
	}
	return password, code, nil
}
