package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/strutil"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

const mailTimeout = 30 * time.Second

// authService implements the AuthService interface
type authService struct {
	accountRepo     accounts.AccountRepository
	profileRepo     profiles.ProfileRepository
	passwordManager auth.PasswordManager
	tokenManager    auth.TokenManager
	otpManager      auth.OTPManager
	mailer          accounts.VerificationMailer
	otpLoginWindow  time.Duration
	logger          logger.Logger
	now             func() time.Time
	mailWG          sync.WaitGroup
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	accountRepo accounts.AccountRepository,
	profileRepo profiles.ProfileRepository,
	passwordManager auth.PasswordManager,
	tokenManager auth.TokenManager,
	otpManager auth.OTPManager,
	mailer accounts.VerificationMailer,
	otpLoginWindow time.Duration,
	logger logger.Logger,
) (accounts.AuthService, error) {
	return &authService{
		accountRepo:     accountRepo,
		profileRepo:     profileRepo,
		passwordManager: passwordManager,
		tokenManager:    tokenManager,
		otpManager:      otpManager,
		mailer:          mailer,
		otpLoginWindow:  otpLoginWindow,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Signup creates the account, its empty profile and sends the verification code in the background.
func (s *authService) Signup(ctx context.Context, username, email, password string) (*accounts.Account, *profiles.Profile, error) {
	email = strutil.NormalizeEmail(email)

	if !validators.IsStrongPassword(password) {
		return nil, nil, auth.ErrWeakPassword
	}

	if err := s.ensureCredentialsAvailable(ctx, &username, &email); err != nil {
		return nil, nil, err
	}

	hashedSalt, hashedPassword, err := s.passwordManager.GenerateDoubleLayeredPassword(password)
	if err != nil {
		return nil, nil, err
	}

	code, err := accounts.GenerateVerificationCode()
	if err != nil {
		return nil, nil, err
	}

	account := &accounts.Account{
		Username:         username,
		Email:            email,
		HashedPassword:   hashedPassword,
		HashedSalt:       hashedSalt,
		VerificationCode: code,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, nil, err
	}

	profile := profiles.NewProfile(account.ID)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if delErr := s.accountRepo.Delete(ctx, account.ID); delErr != nil {
			s.logger.Error("Failed to roll back account ", account.ID, ": ", delErr)
		}
		return nil, nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.sendVerificationCode(account.Email, account.Username, code)

	return account, profile, nil
}

// ensureCredentialsAvailable requires both username and email to be unused.
// Either one being nil skips its check.
func (s *authService) ensureCredentialsAvailable(ctx context.Context, username, email *string) error {
	if username != nil {
		ok, err := s.accountRepo.IsUsernameAvailable(ctx, *username)
		if err != nil {
			return err
		}
		if !ok {
			return accounts.ErrCredentialsTaken
		}
	}
	if email != nil {
		ok, err := s.accountRepo.IsEmailAvailable(ctx, *email)
		if err != nil {
			return err
		}
		if !ok {
			return accounts.ErrCredentialsTaken
		}
	}
	return nil
}

func (s *authService) sendVerificationCode(email, username, code string) {
	s.mailWG.Add(1)
	go func() {
		defer s.mailWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := s.mailer.SendVerificationCode(ctx, email, username, code); err != nil {
			s.logger.Error("Failed to send verification code to ", email, ": ", err)
		}
	}()
}

func (s *authService) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.mailWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Warn("Stopped waiting for pending verification emails: ", ctx.Err())
		return ctx.Err()
	}
}

func (s *authService) VerifyAccount(ctx context.Context, email, code string) (*accounts.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strutil.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if account.IsVerified {
		return nil, accounts.ErrAccountAlreadyVerified
	}
	if account.VerificationCode != code {
		return nil, accounts.ErrVerificationCodeMismatch
	}

	account.IsVerified = true
	if err := s.accountRepo.Update(ctx, account, accounts.FieldVerification); err != nil {
		return nil, err
	}

	s.logger.Info("Verified account with id ", account.ID)
	return account, nil
}

// checkCredentials loads a verified account and checks its password
func (s *authService) checkCredentials(ctx context.Context, username, password string) (*accounts.Account, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !account.IsVerified {
		return nil, accounts.ErrAccountNotVerified
	}

	if !s.passwordManager.IsHashedPasswordVerified(account.HashedSalt, password, account.HashedPassword) {
		return nil, accounts.ErrPasswordMismatch
	}

	return account, nil
}

func (s *authService) Signin(ctx context.Context, username, password string) (*accounts.Session, error) {
	account, err := s.checkCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	account.MarkCredentialsValidated(s.now())
	if err := s.accountRepo.Update(ctx, account, accounts.FieldLoginState); err != nil {
		return nil, err
	}

	if account.IsOTPActive() {
		return nil, accounts.ErrOTPRequired
	}

	return s.newSession(account)
}

func (s *authService) SigninOAuth(ctx context.Context, username, password string) (*accounts.Session, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	var code string
	if account.IsOTPActive() {
		password, code, err = auth.SeparatePasswordAndOTP(password)
		if err != nil {
			return nil, err
		}
	}

	account, err = s.checkCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if account.IsOTPActive() && !s.otpManager.ValidateOTPAt(code, account.OTPSecret, s.now()) {
		return nil, accounts.ErrInvalidOTP
	}

	account.MarkCredentialsValidated(s.now())
	if err := s.accountRepo.Update(ctx, account, accounts.FieldLoginState); err != nil {
		return nil, err
	}

	return s.newSession(account)
}

func (s *authService) Signout(ctx context.Context, current *accounts.Account, id uint) (*accounts.Account, error) {
	if current.ID != id {
		return nil, accounts.ErrAccountMismatch
	}

	current.IsLoggedIn = false
	if err := s.accountRepo.Update(ctx, current, accounts.FieldLoginState); err != nil {
		return nil, err
	}

	s.logger.Info("Signed out account with id ", id)
	return current, nil
}

func (s *authService) GenerateOTP(ctx context.Context, current *accounts.Account) (*accounts.Account, error) {
	secret, authURL, err := s.otpManager.GenerateOTP(current.Email)
	if err != nil {
		return nil, err
	}

	current.OTPSecret = secret
	current.OTPAuthURL = authURL
	current.IsOTPEnabled = true
	current.IsOTPVerified = false

	if err := s.accountRepo.Update(ctx, current, accounts.FieldOTP); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *authService) VerifyOTP(ctx context.Context, current *accounts.Account, email, token string) error {
	if strutil.NormalizeEmail(email) != current.Email {
		return accounts.ErrEmailMismatch
	}
	if !current.IsOTPEnabled {
		return accounts.ErrOTPNotEnabled
	}
	if !s.otpManager.ValidateOTPAt(token, current.OTPSecret, s.now()) {
		return accounts.ErrInvalidOTP
	}

	current.IsOTPVerified = true
	return s.accountRepo.Update(ctx, current, accounts.FieldOTP)
}

func (s *authService) ValidateOTP(ctx context.Context, email, token string) (*accounts.Session, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strutil.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return nil, accounts.ErrEmailMismatch
		}
		return nil, err
	}

	now := s.now()
	switch {
	case !account.IsOTPVerified:
		return nil, accounts.ErrOTPNotVerified
	case !account.IsLoggedIn:
		return nil, accounts.ErrNotLoggedIn
	case !account.OTPLoginAllowed(now, s.otpLoginWindow):
		return nil, accounts.ErrOTPLoginExpired
	case !s.otpManager.ValidateOTPAt(token, account.OTPSecret, now):
		return nil, accounts.ErrInvalidOTP
	}

	return s.newSession(account)
}

func (s *authService) DisableOTP(ctx context.Context, current *accounts.Account, token string) (*accounts.Account, error) {
	if !current.IsOTPEnabled {
		return nil, accounts.ErrOTPNotEnabled
	}
	if !s.otpManager.ValidateOTPAt(token, current.OTPSecret, s.now()) {
		return nil, accounts.ErrInvalidOTP
	}

	current.ClearOTP()
	if err := s.accountRepo.Update(ctx, current, accounts.FieldOTP); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*accounts.Account, error) {
	identity, err := s.tokenManager.RetrieveDetailsFromJWT(token)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.Read(ctx, &accounts.AccountQuery{Username: identity.Username, Email: identity.Email})
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

func (s *authService) newSession(account *accounts.Account) (*accounts.Session, error) {
	token, err := s.tokenManager.GenerateJWT(account.Identity())
	if err != nil {
		return nil, err
	}
	return &accounts.Session{Account: account, AccessToken: token}, nil
}
