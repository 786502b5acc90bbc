package accounts

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// VerificationCodeLength is the number of digits in an emailed verification code
const VerificationCodeLength = 6

// Account entity
type Account struct {
	ID                     uint
	Username               string `validate:"required,max=64,username"`
	Email                  string `validate:"required,max=64,email"`
	HashedPassword         string `validate:"required"`
	HashedSalt             string `validate:"required"`
	IsAdmin                bool
	IsLoggedIn             bool
	IsVerified             bool
	VerificationCode       string `validate:"omitempty,len=6,numeric"`
	OTPSecret              string
	OTPAuthURL             string
	IsOTPEnabled           bool
	IsOTPVerified          bool
	CredentialsValidatedAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	return validators.ValidateStruct(a)
}

// Identity returns the claims an access token for this account carries
func (a *Account) Identity() *auth.Identity {
	return &auth.Identity{Username: a.Username, Email: a.Email}
}

// IsOTPActive reports whether signin has to be completed with a one-time password
func (a *Account) IsOTPActive() bool {
	return a.IsOTPEnabled && a.IsOTPVerified
}

// OTPLoginAllowed reports whether the password step happened recently enough
// for the OTP step to complete the signin.
func (a *Account) OTPLoginAllowed(now time.Time, window time.Duration) bool {
	if a.CredentialsValidatedAt == nil {
		return false
	}
	return now.Sub(*a.CredentialsValidatedAt) <= window
}

// MarkCredentialsValidated records a successful password check
func (a *Account) MarkCredentialsValidated(now time.Time) {
	a.IsLoggedIn = true
	a.CredentialsValidatedAt = &now
}

// ClearOTP turns two-factor authentication off
func (a *Account) ClearOTP() {
	a.OTPSecret = ""
	a.OTPAuthURL = ""
	a.IsOTPEnabled = false
	a.IsOTPVerified = false
}

// AccountField names a group of columns AccountRepository.Update writes.
// Columns outside the requested groups keep their stored values.
type AccountField string

const (
	FieldUsername     AccountField = "username"
	FieldEmail        AccountField = "email"
	FieldPassword     AccountField = "password"     // hashed password and salt
	FieldVerification AccountField = "verification" // is_verified
	FieldLoginState   AccountField = "login_state"  // is_logged_in and credentials_validated_at
	FieldOTP          AccountField = "otp"          // secret, auth url, enabled and verified flags
)

// GenerateVerificationCode returns a random code in [100000, 999999]
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// AccountQuery selects a single account. Every non-zero field has to match.
type AccountQuery struct {
	ID       uint
	Username string `validate:"omitempty,max=64"`
	Email    string `validate:"omitempty,max=64"`
}

// Validate for validating AccountQuery struct
func (q *AccountQuery) Validate() error {
	if q.ID == 0 && q.Username == "" && q.Email == "" {
		return fmt.Errorf("%w: at least one of id, username or email is required", validators.ErrValidation)
	}
	return validators.ValidateStruct(q)
}

// AccountUpdate carries the optional fields of an account update
type AccountUpdate struct {
	Username *string `validate:"omitempty,max=64,username"`
	Email    *string `validate:"omitempty,max=64,email"`
	Password *string `validate:"omitempty,password"`
}

// Validate for validating AccountUpdate struct
func (u *AccountUpdate) Validate() error {
	return validators.ValidateStruct(u)
}

// Session is an authenticated account together with its access token
type Session struct {
	Account     *Account
	AccessToken string
}
