package v1

import (
	"errors"
	"net/http"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// Messages returned in place of internal error text
const (
	msgInvalidRequest    = "Bad request!"
	msgSigninFailed      = "Signin failed! Recheck all your credentials!"
	msgForbidden         = "Refused access to the requested resource!"
	msgInternal          = "Internal server error"
	msgCredentialsTaken  = "Username or email is already taken"
	msgOTPRequired       = "Valid credentials but a OTP is required to finished the signin process"
	msgRateLimitExceeded = "Rate limit exceeded, try again later"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{auth.ErrWeakPassword, http.StatusBadRequest},
	{auth.ErrMalformedOTP, http.StatusBadRequest},
	{accounts.ErrCredentialsTaken, http.StatusBadRequest},
	{accounts.ErrAccountNotVerified, http.StatusBadRequest},
	{accounts.ErrAccountAlreadyVerified, http.StatusBadRequest},
	{accounts.ErrVerificationCodeMismatch, http.StatusBadRequest},
	{accounts.ErrPasswordMismatch, http.StatusBadRequest},
	{accounts.ErrOTPNotVerified, http.StatusBadRequest},
	{accounts.ErrOTPNotEnabled, http.StatusBadRequest},
	{accounts.ErrEmailMismatch, http.StatusBadRequest},
	{blobs.ErrNotAnImage, http.StatusBadRequest},
	{pokemonimages.ErrInvalidPrediction, http.StatusBadRequest},

	{accounts.ErrOTPRequired, http.StatusUnauthorized},

	{auth.ErrInvalidToken, http.StatusForbidden},
	{accounts.ErrAccountMismatch, http.StatusForbidden},
	{accounts.ErrInvalidOTP, http.StatusForbidden},
	{accounts.ErrNotLoggedIn, http.StatusForbidden},
	{accounts.ErrOTPLoginExpired, http.StatusForbidden},
	{profiles.ErrNotOwner, http.StatusForbidden},
	{pokemonimages.ErrNotOwner, http.StatusForbidden},

	{accounts.ErrAccountNotFound, http.StatusNotFound},
	{profiles.ErrProfileNotFound, http.StatusNotFound},
	{pokemonimages.ErrPokemonImageNotFound, http.StatusNotFound},
	{pokemonimages.ErrNoImageFile, http.StatusNotFound},
	{blobs.ErrBlobNotFound, http.StatusNotFound},
}

// statusForError maps a service error onto an HTTP status. Unknown errors are 500.
func statusForError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageForError hides internal failures and keeps the texts clients already know
func messageForError(err error, status int) string {
	switch {
	case status == http.StatusInternalServerError:
		return msgInternal
	case errors.Is(err, accounts.ErrCredentialsTaken):
		return msgCredentialsTaken
	case errors.Is(err, accounts.ErrOTPRequired):
		return msgOTPRequired
	}
	return err.Error()
}

func abortWithMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// respondError writes the ErrorResponse for err
func respondError(ctx *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
	}
	abortWithMessage(ctx, status, messageForError(err, status))
}

// respondSigninError reports unknown accounts like wrong passwords
func respondSigninError(ctx *gin.Context, err error) {
	if errors.Is(err, accounts.ErrAccountNotFound) || errors.Is(err, accounts.ErrPasswordMismatch) {
		abortWithMessage(ctx, http.StatusBadRequest, msgSigninFailed)
		return
	}
	respondError(ctx, err)
}
