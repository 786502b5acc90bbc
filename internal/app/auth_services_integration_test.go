//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentOTP(t *testing.T, secret string) string {
	t.Helper()
	code, err := cryptography.GenerateOTPCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

// enableOTP runs the generate and verify steps for account
func enableOTP(t *testing.T, services *TestServices, account *accounts.Account) *accounts.Account {
	t.Helper()
	ctx := context.Background()

	account, err := services.AuthService.GenerateOTP(ctx, account)
	require.NoError(t, err)
	require.NoError(t, services.AuthService.VerifyOTP(ctx, account, account.Email, currentOTP(t, account.OTPSecret)))
	return account
}

func TestAuthService_Signup_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	account, profile, err := services.AuthService.Signup(ctx, "ash", " Ash@Pallet.Town ", TestPassword)
	require.NoError(t, err)

	assert.NotZero(t, account.ID)
	assert.Equal(t, "ash@pallet.town", account.Email)
	assert.False(t, account.IsVerified)
	assert.False(t, account.IsLoggedIn)
	assert.Len(t, account.VerificationCode, accounts.VerificationCodeLength)
	assert.NotEqual(t, TestPassword, account.HashedPassword)

	assert.Equal(t, account.ID, profile.AccountID)

	stored, err := services.DBContext.ProfileRepo.GetByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, stored.MMR)

	assert.Equal(t, account.VerificationCode, services.VerificationCode(t, account.Email))
}

func TestAuthService_Signup_Rejected(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	services.SignupVerified(t, "misty")

	tests := []struct {
		name     string
		username string
		email    string
		password string
		expected error
	}{
		{"weak password", "brock", "brock@pallet.town", "password", auth.ErrWeakPassword},
		{"username taken", "misty", "other@pallet.town", TestPassword, accounts.ErrCredentialsTaken},
		{"email taken", "brock", "MISTY@pallet.town", TestPassword, accounts.ErrCredentialsTaken},
		{"invalid username", "br ock", "brock@pallet.town", TestPassword, validators.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := services.AuthService.Signup(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAuthService_VerifyAccount(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	account, _, err := services.AuthService.Signup(ctx, "gary", "gary@pallet.town", TestPassword)
	require.NoError(t, err)

	_, err = services.AuthService.VerifyAccount(ctx, "nobody@pallet.town", account.VerificationCode)
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)

	_, err = services.AuthService.VerifyAccount(ctx, account.Email, "000000")
	assert.ErrorIs(t, err, accounts.ErrVerificationCodeMismatch)

	verified, err := services.AuthService.VerifyAccount(ctx, account.Email, account.VerificationCode)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = services.AuthService.VerifyAccount(ctx, account.Email, account.VerificationCode)
	assert.ErrorIs(t, err, accounts.ErrAccountAlreadyVerified)
}

func TestAuthService_Signin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, _, err := services.AuthService.Signup(ctx, "brock", "brock@pallet.town", TestPassword)
	require.NoError(t, err)

	_, err = services.AuthService.Signin(ctx, "brock", TestPassword)
	assert.ErrorIs(t, err, accounts.ErrAccountNotVerified)

	_, err = services.AuthService.VerifyAccount(ctx, "brock@pallet.town", services.VerificationCode(t, "brock@pallet.town"))
	require.NoError(t, err)

	_, err = services.AuthService.Signin(ctx, "unknown", TestPassword)
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)

	_, err = services.AuthService.Signin(ctx, "brock", "Wrong#Password1")
	assert.ErrorIs(t, err, accounts.ErrPasswordMismatch)

	session, err := services.AuthService.Signin(ctx, "brock", TestPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.True(t, session.Account.IsLoggedIn)
	assert.NotNil(t, session.Account.CredentialsValidatedAt)

	current, err := services.AuthService.Authenticate(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.Account.ID, current.ID)
}

func TestAuthService_Signout(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	services.SignupVerified(t, "jessie")

	session, err := services.AuthService.Signin(ctx, "jessie", TestPassword)
	require.NoError(t, err)

	_, err = services.AuthService.Signout(ctx, session.Account, session.Account.ID+1)
	assert.ErrorIs(t, err, accounts.ErrAccountMismatch)

	account, err := services.AuthService.Signout(ctx, session.Account, session.Account.ID)
	require.NoError(t, err)
	assert.False(t, account.IsLoggedIn)

	stored, err := services.DBContext.AccountRepo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsLoggedIn)
}

func TestAuthService_OTPFlow(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	account := services.SignupVerified(t, "james")

	account, err := services.AuthService.GenerateOTP(ctx, account)
	require.NoError(t, err)
	assert.True(t, account.IsOTPEnabled)
	assert.False(t, account.IsOTPVerified)
	assert.Contains(t, account.OTPAuthURL, "otpauth://totp/")

	// Not verified yet: signin is single step
	_, err = services.AuthService.Signin(ctx, "james", TestPassword)
	require.NoError(t, err)

	err = services.AuthService.VerifyOTP(ctx, account, "other@pallet.town", currentOTP(t, account.OTPSecret))
	assert.ErrorIs(t, err, accounts.ErrEmailMismatch)

	err = services.AuthService.VerifyOTP(ctx, account, account.Email, "abcdef")
	assert.ErrorIs(t, err, accounts.ErrInvalidOTP)

	require.NoError(t, services.AuthService.VerifyOTP(ctx, account, account.Email, currentOTP(t, account.OTPSecret)))

	_, err = services.AuthService.Signin(ctx, "james", TestPassword)
	assert.ErrorIs(t, err, accounts.ErrOTPRequired)

	_, err = services.AuthService.ValidateOTP(ctx, "nobody@pallet.town", currentOTP(t, account.OTPSecret))
	assert.ErrorIs(t, err, accounts.ErrEmailMismatch)

	_, err = services.AuthService.ValidateOTP(ctx, account.Email, "000000")
	assert.ErrorIs(t, err, accounts.ErrInvalidOTP)

	session, err := services.AuthService.ValidateOTP(ctx, account.Email, currentOTP(t, account.OTPSecret))
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
}

func TestAuthService_ValidateOTP_Preconditions(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	account := enableOTP(t, services, services.SignupVerified(t, "meowth"))
	code := currentOTP(t, account.OTPSecret)

	// Never signed in
	_, err := services.AuthService.ValidateOTP(ctx, account.Email, code)
	assert.ErrorIs(t, err, accounts.ErrNotLoggedIn)

	_, err = services.AuthService.Signin(ctx, "meowth", TestPassword)
	require.ErrorIs(t, err, accounts.ErrOTPRequired)

	svc := services.AuthService.(*authService)
	svc.now = func() time.Time { return time.Now().Add(10 * time.Minute) }
	_, err = services.AuthService.ValidateOTP(ctx, account.Email, code)
	assert.ErrorIs(t, err, accounts.ErrOTPLoginExpired)
	svc.now = time.Now

	other := services.SignupVerified(t, "togepi")
	_, err = services.AuthService.GenerateOTP(ctx, other)
	require.NoError(t, err)
	_, err = services.AuthService.ValidateOTP(ctx, other.Email, code)
	assert.ErrorIs(t, err, accounts.ErrOTPNotVerified)
}

func TestAuthService_SigninOAuth(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	services.SignupVerified(t, "oak")

	session, err := services.AuthService.SigninOAuth(ctx, "oak", TestPassword)
	require.NoError(t, err)
	account := enableOTP(t, services, session.Account)

	tests := []struct {
		name     string
		password string
		expected error
	}{
		{"password without otp", TestPassword, auth.ErrMalformedOTP},
		{"wrong otp", TestPassword + "000000", accounts.ErrInvalidOTP},
		{"wrong password", "Wrong#Password1" + currentOTP(t, account.OTPSecret), accounts.ErrPasswordMismatch},
		{"too short", "Ab1#" + currentOTP(t, account.OTPSecret), auth.ErrMalformedOTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AuthService.SigninOAuth(ctx, "oak", tt.password)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	session, err = services.AuthService.SigninOAuth(ctx, "oak", TestPassword+currentOTP(t, account.OTPSecret))
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
}

func TestAuthService_DisableOTP(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	account := services.SignupVerified(t, "psyduck")

	_, err := services.AuthService.DisableOTP(ctx, account, "123456")
	assert.ErrorIs(t, err, accounts.ErrOTPNotEnabled)

	account = enableOTP(t, services, account)

	_, err = services.AuthService.DisableOTP(ctx, account, "000000")
	assert.ErrorIs(t, err, accounts.ErrInvalidOTP)

	account, err = services.AuthService.DisableOTP(ctx, account, currentOTP(t, account.OTPSecret))
	require.NoError(t, err)
	assert.False(t, account.IsOTPEnabled)
	assert.Empty(t, account.OTPSecret)

	_, err = services.AuthService.Signin(ctx, "psyduck", TestPassword)
	assert.NoError(t, err)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.AuthService.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	account := services.SignupVerified(t, "snorlax")
	session, err := services.AccountService.GetCurrent(ctx, account, account.ID)
	require.NoError(t, err)

	require.NoError(t, services.AccountService.Delete(ctx, account, account.ID))

	_, err = services.AuthService.Authenticate(ctx, session.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

type mailerFunc func(ctx context.Context, email, username, code string) error

func (f mailerFunc) SendVerificationCode(ctx context.Context, email, username, code string) error {
	return f(ctx, email, username, code)
}

func TestAuthService_CloseWaitsForPendingMail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	release := make(chan struct{})
	sent := make(chan string, 1)
	svc := services.AuthService.(*authService)
	svc.mailer = mailerFunc(func(_ context.Context, email, _, _ string) error {
		<-release
		sent <- email
		return nil
	})

	_, _, err := svc.Signup(ctx, "ash", "ash@pallet.town", TestPassword)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Close(short), context.DeadlineExceeded)

	close(release)
	require.NoError(t, svc.Close(ctx))

	select {
	case email := <-sent:
		assert.Equal(t, "ash@pallet.town", email)
	default:
		t.Fatal("verification email was not sent before Close returned")
	}
}
