package accounts

import "errors"

var (
	ErrAccountNotFound          = errors.New("account not found")
	ErrAccountNotVerified       = errors.New("account is not verified")
	ErrAccountAlreadyVerified   = errors.New("account is already verified")
	ErrVerificationCodeMismatch = errors.New("verification code does not match")
	ErrPasswordMismatch         = errors.New("password does not match")
	ErrCredentialsTaken         = errors.New("username or email is already taken")
	ErrAccountMismatch          = errors.New("access forbidden for this account")
	ErrNotLoggedIn              = errors.New("account credentials not verified")
	ErrOTPRequired              = errors.New("valid credentials but a OTP is required to finish the signin process")
	ErrOTPNotEnabled            = errors.New("OTP is not enabled")
	ErrOTPNotVerified           = errors.New("OTP not verified")
	ErrInvalidOTP               = errors.New("invalid OTP token")
	ErrOTPLoginExpired          = errors.New("account credentials verified too long ago, login again")
	ErrEmailMismatch            = errors.New("invalid email")
)
