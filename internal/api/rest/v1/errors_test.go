//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("validation error: %w", validators.ErrValidation), http.StatusBadRequest},
		{accounts.ErrCredentialsTaken, http.StatusBadRequest},
		{accounts.ErrVerificationCodeMismatch, http.StatusBadRequest},
		{accounts.ErrOTPRequired, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusForbidden},
		{accounts.ErrOTPLoginExpired, http.StatusForbidden},
		{profiles.ErrNotOwner, http.StatusForbidden},
		{accounts.ErrAccountNotFound, http.StatusNotFound},
		{pokemonimages.ErrPokemonImageNotFound, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusForError(tt.err))
		})
	}
}

func TestMessageForError_HidesInternalErrors(t *testing.T) {
	err := errors.New("pq: password authentication failed")
	assert.Equal(t, msgInternal, messageForError(err, statusForError(err)))
	assert.Equal(t, msgCredentialsTaken, messageForError(accounts.ErrCredentialsTaken, http.StatusBadRequest))
}

func TestNewAccountResponse_OmitsSecrets(t *testing.T) {
	resp := NewAccountResponse(testAccount())

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "ash", resp.Username)
	assert.Nil(t, resp.UpdatedAt)
}
