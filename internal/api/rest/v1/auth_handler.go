package v1

import (
	"errors"
	"net/http"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for the authentication endpoints
type AuthHandler interface {
	Signup(ctx *gin.Context)
	Signin(ctx *gin.Context)
	VerifyAccount(ctx *gin.Context)
	Signout(ctx *gin.Context)
	Token(ctx *gin.Context)
	GenerateOTP(ctx *gin.Context)
	VerifyOTP(ctx *gin.Context)
	ValidateOTP(ctx *gin.Context)
	DisableOTP(ctx *gin.Context)
}

type authHandler struct {
	authService accounts.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService accounts.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// bindJSON decodes and validates a request body, answering 400 on failure
func bindJSON(ctx *gin.Context, req interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, err)
		return false
	}
	return true
}

// Signup creates an account and its profile
func (handler *authHandler) Signup(ctx *gin.Context) {
	var req SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	account, profile, err := handler.authService.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, SignupResponse{
		Username:         account.Username,
		Email:            account.Email,
		IsProfileCreated: profile != nil,
	})
}

// Signin checks credentials and issues an access token
func (handler *authHandler) Signin(ctx *gin.Context) {
	var req SigninRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := handler.authService.Signin(ctx, req.Username, req.Password)
	if err != nil {
		respondSigninError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, NewAuthorizedAccountResponse(session))
}

// VerifyAccount activates an account with its emailed code
func (handler *authHandler) VerifyAccount(ctx *gin.Context) {
	var req VerificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	account, err := handler.authService.VerifyAccount(ctx, req.Email, req.VerificationCode)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			abortWithMessage(ctx, http.StatusBadRequest, err.Error())
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, VerificationResponse{Email: account.Email, IsVerified: account.IsVerified})
}

// Signout logs the current account out
func (handler *authHandler) Signout(ctx *gin.Context) {
	var req SignoutRequest
	if !bindJSON(ctx, &req) {
		return
	}

	account, err := handler.authService.Signout(ctx, currentAccount(ctx), req.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SignoutResponse{Username: account.Username, IsLoggedOut: !account.IsLoggedIn})
}

// Token implements the OAuth2 password flow. With two-factor auth active the
// password field carries the password followed by the current OTP.
func (handler *authHandler) Token(ctx *gin.Context) {
	var req OAuthSigninRequest
	if err := ctx.ShouldBind(&req); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	session, err := handler.authService.SigninOAuth(ctx, req.Username, req.Password)
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			respondError(ctx, err)
			return
		}
		abortWithMessage(ctx, http.StatusForbidden, "Invalid credentials")
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{AccessToken: session.AccessToken, TokenType: "bearer"})
}

// GenerateOTP enables two-factor authentication for the current account
func (handler *authHandler) GenerateOTP(ctx *gin.Context) {
	account, err := handler.authService.GenerateOTP(ctx, currentAccount(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, OTPGenerateResponse{OTPSecret: account.OTPSecret, OTPAuthURL: account.OTPAuthURL})
}

// VerifyOTP confirms the generated secret
func (handler *authHandler) VerifyOTP(ctx *gin.Context) {
	var req OTPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.VerifyOTP(ctx, currentAccount(ctx), req.Email, req.OTPToken); err != nil {
		if errors.Is(err, accounts.ErrEmailMismatch) {
			abortWithMessage(ctx, http.StatusForbidden, err.Error())
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "OTP Token Verified"})
}

// ValidateOTP finishes a signin that required a one-time password
func (handler *authHandler) ValidateOTP(ctx *gin.Context) {
	var req OTPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := handler.authService.ValidateOTP(ctx, req.Email, req.OTPToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthorizedAccountResponse(session))
}

// DisableOTP turns two-factor authentication off
func (handler *authHandler) DisableOTP(ctx *gin.Context) {
	var req DisableOTPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if _, err := handler.authService.DisableOTP(ctx, currentAccount(ctx), req.OTPToken); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "OTP disabled"})
}
