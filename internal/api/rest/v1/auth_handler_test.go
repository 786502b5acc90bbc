//go:build unit
// +build unit

package v1

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Signup_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	account := testAccount()
	mockAuthService.On("Signup", mock.Anything, "ash", "ash@pallet.town", "Pikachu#2024").
		Return(account, profiles.NewProfile(account.ID), nil)

	c, w := newTestContext(t, http.MethodPost, "/auth/signup", SignupRequest{
		Username: "ash", Email: "ash@pallet.town", Password: "Pikachu#2024",
	})
	handler.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"username":"ash","email":"ash@pallet.town","is_profile_created":true}`, w.Body.String())
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Signup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		serviceErr error
		status     int
		message    string
	}{
		{"malformed body", "not an object", nil, http.StatusBadRequest, msgInvalidRequest},
		{"invalid email", SignupRequest{Username: "ash", Email: "nope", Password: "x"}, nil, http.StatusBadRequest, "Tag: email"},
		{"credentials taken", SignupRequest{Username: "ash", Email: "ash@pallet.town", Password: "Pikachu#2024"}, accounts.ErrCredentialsTaken, http.StatusBadRequest, msgCredentialsTaken},
		{"weak password", SignupRequest{Username: "ash", Email: "ash@pallet.town", Password: "pikachu"}, auth.ErrWeakPassword, http.StatusBadRequest, "at least 8 characters"},
		{"storage failure", SignupRequest{Username: "ash", Email: "ash@pallet.town", Password: "Pikachu#2024"}, errors.New("db down"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(MockAuthService)
			handler := NewAuthHandler(mockAuthService)
			if tt.serviceErr != nil {
				mockAuthService.On("Signup", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, tt.serviceErr)
			}

			c, w := newTestContext(t, http.MethodPost, "/auth/signup", tt.body)
			handler.Signup(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	account := testAccount()

	tests := []struct {
		name       string
		session    *accounts.Session
		serviceErr error
		status     int
		contains   string
	}{
		{"success", &accounts.Session{Account: account, AccessToken: "token-123"}, nil, http.StatusAccepted, `"token":"token-123"`},
		{"otp required", nil, accounts.ErrOTPRequired, http.StatusUnauthorized, msgOTPRequired},
		{"unknown account", nil, accounts.ErrAccountNotFound, http.StatusBadRequest, msgSigninFailed},
		{"wrong password", nil, accounts.ErrPasswordMismatch, http.StatusBadRequest, msgSigninFailed},
		{"not verified", nil, accounts.ErrAccountNotVerified, http.StatusBadRequest, accounts.ErrAccountNotVerified.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(MockAuthService)
			handler := NewAuthHandler(mockAuthService)
			if tt.session != nil {
				mockAuthService.On("Signin", mock.Anything, "ash", "Pikachu#2024").Return(tt.session, nil)
			} else {
				mockAuthService.On("Signin", mock.Anything, "ash", "Pikachu#2024").Return(nil, tt.serviceErr)
			}

			c, w := newTestContext(t, http.MethodPost, "/auth/signin", SigninRequest{Username: "ash", Password: "Pikachu#2024"})
			handler.Signin(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotContains(t, w.Body.String(), "hashed")
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_VerifyAccount(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	account := testAccount()
	mockAuthService.On("VerifyAccount", mock.Anything, account.Email, "123456").Return(account, nil)
	mockAuthService.On("VerifyAccount", mock.Anything, "nobody@pallet.town", "123456").Return(nil, accounts.ErrAccountNotFound)

	c, w := newTestContext(t, http.MethodPost, "/auth/account_verification", VerificationRequest{Email: account.Email, VerificationCode: "123456"})
	handler.VerifyAccount(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"ash@pallet.town","is_verified":true}`, w.Body.String())

	c, w = newTestContext(t, http.MethodPost, "/auth/account_verification", VerificationRequest{Email: "nobody@pallet.town", VerificationCode: "123456"})
	handler.VerifyAccount(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newTestContext(t, http.MethodPost, "/auth/account_verification", VerificationRequest{Email: account.Email, VerificationCode: "12ab56"})
	handler.VerifyAccount(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Signout(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	account := testAccount()
	loggedOut := *account
	loggedOut.IsLoggedIn = false
	mockAuthService.On("Signout", mock.Anything, account, account.ID).Return(&loggedOut, nil)
	mockAuthService.On("Signout", mock.Anything, account, uint(99)).Return(nil, accounts.ErrAccountMismatch)

	c, w := newTestContext(t, http.MethodPost, "/auth/signout", SignoutRequest{ID: account.ID})
	withAccount(c, account)
	handler.Signout(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"ash","is_logged_out":true}`, w.Body.String())

	c, w = newTestContext(t, http.MethodPost, "/auth/signout", SignoutRequest{ID: 99})
	withAccount(c, account)
	handler.Signout(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Token(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)

	account := testAccount()
	mockAuthService.On("SigninOAuth", mock.Anything, "ash", "Pikachu#2024123456").
		Return(&accounts.Session{Account: account, AccessToken: "token-123"}, nil)
	mockAuthService.On("SigninOAuth", mock.Anything, "ash", "Pikachu#2024").Return(nil, auth.ErrMalformedOTP)

	form := func(password string) *strings.Reader {
		return strings.NewReader(url.Values{"username": {"ash"}, "password": {password}}.Encode())
	}

	c, w := newTestContext(t, http.MethodPost, "/auth/token", nil)
	c.Request.Body = io.NopCloser(form("Pikachu#2024123456"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.Token(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"token-123","token_type":"bearer"}`, w.Body.String())

	c, w = newTestContext(t, http.MethodPost, "/auth/token", nil)
	c.Request.Body = io.NopCloser(form("Pikachu#2024"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.Token(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_OTP(t *testing.T) {
	account := testAccount()

	t.Run("generate", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		handler := NewAuthHandler(mockAuthService)

		enabled := *account
		enabled.OTPAuthURL = "otpauth://totp/GGEA:ash@pallet.town?secret=JBSWY3DPEHPK3PXP"
		mockAuthService.On("GenerateOTP", mock.Anything, account).Return(&enabled, nil)

		c, w := newTestContext(t, http.MethodPost, "/auth/otp", nil)
		withAccount(c, account)
		handler.GenerateOTP(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"otp_secret":"JBSWY3DPEHPK3PXP"`)
		assert.Contains(t, w.Body.String(), `"otp_auth_url":"otpauth://totp/`)
	})

	t.Run("verify", func(t *testing.T) {
		tests := []struct {
			name       string
			serviceErr error
			status     int
		}{
			{"verified", nil, http.StatusOK},
			{"email mismatch", accounts.ErrEmailMismatch, http.StatusForbidden},
			{"invalid token", accounts.ErrInvalidOTP, http.StatusForbidden},
			{"not enabled", accounts.ErrOTPNotEnabled, http.StatusBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockAuthService := new(MockAuthService)
				handler := NewAuthHandler(mockAuthService)
				mockAuthService.On("VerifyOTP", mock.Anything, account, account.Email, "123456").Return(tt.serviceErr)

				c, w := newTestContext(t, http.MethodPut, "/auth/otp/verify", OTPRequest{Email: account.Email, OTPToken: "123456"})
				withAccount(c, account)
				handler.VerifyOTP(c)

				assert.Equal(t, tt.status, w.Code)
				mockAuthService.AssertExpectations(t)
			})
		}
	})

	t.Run("validate", func(t *testing.T) {
		tests := []struct {
			name       string
			serviceErr error
			status     int
		}{
			{"validated", nil, http.StatusOK},
			{"unknown email", accounts.ErrEmailMismatch, http.StatusBadRequest},
			{"not verified", accounts.ErrOTPNotVerified, http.StatusBadRequest},
			{"not logged in", accounts.ErrNotLoggedIn, http.StatusForbidden},
			{"window expired", accounts.ErrOTPLoginExpired, http.StatusForbidden},
			{"invalid token", accounts.ErrInvalidOTP, http.StatusForbidden},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockAuthService := new(MockAuthService)
				handler := NewAuthHandler(mockAuthService)
				if tt.serviceErr == nil {
					mockAuthService.On("ValidateOTP", mock.Anything, account.Email, "123456").
						Return(&accounts.Session{Account: account, AccessToken: "token-123"}, nil)
				} else {
					mockAuthService.On("ValidateOTP", mock.Anything, account.Email, "123456").Return(nil, tt.serviceErr)
				}

				c, w := newTestContext(t, http.MethodPut, "/auth/otp/validate", OTPRequest{Email: account.Email, OTPToken: "123456"})
				handler.ValidateOTP(c)

				assert.Equal(t, tt.status, w.Code)
				if tt.serviceErr == nil {
					assert.Contains(t, w.Body.String(), `"is_otp_required":false`)
				}
				mockAuthService.AssertExpectations(t)
			})
		}
	})

	t.Run("disable", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		handler := NewAuthHandler(mockAuthService)
		mockAuthService.On("DisableOTP", mock.Anything, account, "123456").Return(account, nil)

		c, w := newTestContext(t, http.MethodDelete, "/auth/otp", DisableOTPRequest{OTPToken: "123456"})
		withAccount(c, account)
		handler.DisableOTP(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockAuthService.AssertExpectations(t)
	})
}
