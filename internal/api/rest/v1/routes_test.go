//go:build unit
// +build unit

package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAccountService := new(MockAccountService)
	mockProfileService := new(MockProfileService)
	mockPokemonImageService := new(MockPokemonImageService)

	mockAccountService.On("List", mock.Anything).Return(nil, nil)
	mockProfileService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockPokemonImageService.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := config.DefaultRestConfig()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	SetupRoutes(ctx, r, mockAuthService, mockAccountService, mockProfileService, mockPokemonImageService, &cfg.Security, &cfg.RateLimit)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/v1/accounts", http.StatusOK},
		{"GET", "/api/v1/profiles", http.StatusOK},
		{"GET", "/api/v1/pokemon_images", http.StatusOK},
		{"POST", "/api/v1/auth/signup", http.StatusBadRequest},
		{"POST", "/api/v1/auth/signin", http.StatusBadRequest},
		{"POST", "/api/v1/auth/account_verification", http.StatusBadRequest},
		{"PUT", "/api/v1/auth/otp/validate", http.StatusBadRequest},
		{"POST", "/api/v1/auth/token", http.StatusBadRequest},
		{"POST", "/api/v1/auth/signout", http.StatusForbidden},
		{"POST", "/api/v1/auth/otp", http.StatusForbidden},
		{"PUT", "/api/v1/auth/otp/verify", http.StatusForbidden},
		{"DELETE", "/api/v1/auth/otp", http.StatusForbidden},
		{"GET", "/api/v1/accounts/1", http.StatusForbidden},
		{"PUT", "/api/v1/accounts/update/1", http.StatusForbidden},
		{"DELETE", "/api/v1/accounts/delete/1", http.StatusForbidden},
		{"PUT", "/api/v1/profiles/1", http.StatusForbidden},
		{"PUT", "/api/v1/profiles/1/photo", http.StatusForbidden},
		{"POST", "/api/v1/pokemon_images", http.StatusForbidden},
		{"PUT", "/api/v1/pokemon_images/abc", http.StatusForbidden},
		{"PUT", "/api/v1/pokemon_images/abc/predictions", http.StatusForbidden},
		{"DELETE", "/api/v1/pokemon_images/abc", http.StatusForbidden},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSetupRoutes_SigninRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := config.DefaultRestConfig()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	SetupRoutes(ctx, r, new(MockAuthService), new(MockAccountService), new(MockProfileService), new(MockPokemonImageService), &cfg.Security, &cfg.RateLimit)

	var last int
	for i := 0; i < cfg.RateLimit.Requests+1; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
