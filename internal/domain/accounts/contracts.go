package accounts

import (
	"context"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
)

// AuthService drives signup, signin, signout and the two-factor flow.
type AuthService interface {
	// Signup creates an unverified account with an empty profile and mails the verification code.
	// It returns ErrCredentialsTaken when the username or the email is in use.
	Signup(ctx context.Context, username, email, password string) (*Account, *profiles.Profile, error)

	// VerifyAccount marks the account of email as verified when code matches.
	VerifyAccount(ctx context.Context, email, code string) (*Account, error)

	// Signin checks username and password. Accounts with an active OTP get ErrOTPRequired
	// and have to finish through ValidateOTP.
	Signin(ctx context.Context, username, password string) (*Session, error)

	// SigninOAuth is the single-step form of Signin: with an active OTP the password
	// carries the 6 digit code as suffix.
	SigninOAuth(ctx context.Context, username, password string) (*Session, error)

	// Signout logs the current account out. id has to be the current account's id.
	Signout(ctx context.Context, current *Account, id uint) (*Account, error)

	// GenerateOTP enables two-factor authentication with a fresh secret that still needs verification.
	GenerateOTP(ctx context.Context, current *Account) (*Account, error)

	// VerifyOTP confirms the generated secret with a code from the authenticator app.
	VerifyOTP(ctx context.Context, current *Account, email, token string) error

	// ValidateOTP completes a signin that returned ErrOTPRequired.
	ValidateOTP(ctx context.Context, email, token string) (*Session, error)

	// DisableOTP turns two-factor authentication off after checking token.
	DisableOTP(ctx context.Context, current *Account, token string) (*Account, error)

	// Authenticate resolves an access token to the account it was issued for.
	Authenticate(ctx context.Context, token string) (*Account, error)

	// Close waits until verification emails still in flight are sent or ctx is done.
	Close(ctx context.Context) error
}

// AccountService manages accounts once they exist.
type AccountService interface {
	// List returns every account.
	List(ctx context.Context) ([]*Account, error)

	// GetCurrent returns the current account with a fresh access token. id has to match.
	GetCurrent(ctx context.Context, current *Account, id uint) (*Session, error)

	// Update changes username, email or password of the current account and reissues the token.
	Update(ctx context.Context, current *Account, id uint, update *AccountUpdate) (*Session, error)

	// Delete removes the current account together with its profile and pokemon images.
	Delete(ctx context.Context, current *Account, id uint) error
}

// AccountRepository defines the interface for Account-related operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]*Account, error)
	GetByID(ctx context.Context, id uint) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// Read returns the account matching every field set in query
	Read(ctx context.Context, query *AccountQuery) (*Account, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
	// Update persists the columns of fields from account, leaving all other columns untouched
	Update(ctx context.Context, account *Account, fields ...AccountField) error
	// Delete removes the account, its profile and the profile's pokemon images in one transaction
	Delete(ctx context.Context, id uint) error
}

// VerificationMailer delivers verification codes
type VerificationMailer interface {
	SendVerificationCode(ctx context.Context, email, username, code string) error
}
