package auth

import "errors"

var (
	// ErrInvalidToken is returned for access tokens that are malformed, expired or signed with another key
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrUnsupportedAlgorithm is returned for unknown hashing algorithm ids
	ErrUnsupportedAlgorithm = errors.New("unsupported hashing algorithm")
	// ErrWeakPassword is returned when a password does not satisfy the password policy
	ErrWeakPassword = errors.New("password must have at least 8 characters, one upper case letter, one digit and one special character")
	// ErrMalformedOTP is returned when a password+otp input cannot be split
	ErrMalformedOTP = errors.New("expected password followed by a 6 digit OTP")
)
