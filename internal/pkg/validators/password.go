package validators

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordMinLength is the shortest password accepted on signup and update
const PasswordMinLength = 8

// PasswordValidation validates that a password field has at least PasswordMinLength
// characters, one upper case letter, one digit and one special character.
func PasswordValidation(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// IsStrongPassword applies the password policy to a raw string
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < PasswordMinLength {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	return hasUpper && hasDigit && hasSpecial
}

// UsernameValidation allows letters, digits, dots, dashes and underscores
func UsernameValidation(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// New returns a validator with the custom password and username tags registered
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("password", PasswordValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("username", UsernameValidation); err != nil {
		return nil, err
	}

	return validate, nil
}
