//go:build unit
// +build unit

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email, password string) (*accounts.Account, *profiles.Profile, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*accounts.Account), args.Get(1).(*profiles.Profile), args.Error(2)
}

func (m *MockAuthService) VerifyAccount(ctx context.Context, email, code string) (*accounts.Account, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAuthService) Signin(ctx context.Context, username, password string) (*accounts.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) SigninOAuth(ctx context.Context, username, password string) (*accounts.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) Signout(ctx context.Context, current *accounts.Account, id uint) (*accounts.Account, error) {
	args := m.Called(ctx, current, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAuthService) GenerateOTP(ctx context.Context, current *accounts.Account) (*accounts.Account, error) {
	args := m.Called(ctx, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, current *accounts.Account, email, token string) error {
	args := m.Called(ctx, current, email, token)
	return args.Error(0)
}

func (m *MockAuthService) ValidateOTP(ctx context.Context, email, token string) (*accounts.Session, error) {
	args := m.Called(ctx, email, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) DisableOTP(ctx context.Context, current *accounts.Account, token string) (*accounts.Account, error) {
	args := m.Called(ctx, current, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*accounts.Account, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAuthService) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) List(ctx context.Context) ([]*accounts.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Account), args.Error(1)
}

func (m *MockAccountService) GetCurrent(ctx context.Context, current *accounts.Account, id uint) (*accounts.Session, error) {
	args := m.Called(ctx, current, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAccountService) Update(ctx context.Context, current *accounts.Account, id uint, update *accounts.AccountUpdate) (*accounts.Session, error) {
	args := m.Called(ctx, current, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAccountService) Delete(ctx context.Context, current *accounts.Account, id uint) error {
	args := m.Called(ctx, current, id)
	return args.Error(0)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) List(ctx context.Context, query *profiles.ProfileQuery) ([]*profiles.Profile, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) GetByID(ctx context.Context, id uint) (*profiles.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateByID(ctx context.Context, accountID, id uint, update *profiles.ProfileUpdate) (*profiles.Profile, error) {
	args := m.Called(ctx, accountID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

func (m *MockProfileService) UploadPhoto(ctx context.Context, accountID, id uint, fileName string, data []byte) (*profiles.Profile, error) {
	args := m.Called(ctx, accountID, id, fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profiles.Profile), args.Error(1)
}

// MockPokemonImageService is a mock implementation of PokemonImageService
type MockPokemonImageService struct {
	mock.Mock
}

func (m *MockPokemonImageService) List(ctx context.Context, query *pokemonimages.PokemonImageQuery) ([]*pokemonimages.PokemonImage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pokemonimages.PokemonImage), args.Error(1)
}

func (m *MockPokemonImageService) GetByID(ctx context.Context, id string) (*pokemonimages.PokemonImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokemonimages.PokemonImage), args.Error(1)
}

func (m *MockPokemonImageService) Create(ctx context.Context, accountID uint, input *pokemonimages.PokemonImageCreate) (*pokemonimages.PokemonImage, error) {
	args := m.Called(ctx, accountID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokemonimages.PokemonImage), args.Error(1)
}

func (m *MockPokemonImageService) Download(ctx context.Context, id string) (*pokemonimages.PokemonImage, []byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*pokemonimages.PokemonImage), args.Get(1).([]byte), args.Error(2)
}

func (m *MockPokemonImageService) UpdateNickname(ctx context.Context, accountID uint, id, nickname string) (*pokemonimages.PokemonImage, error) {
	args := m.Called(ctx, accountID, id, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokemonimages.PokemonImage), args.Error(1)
}

func (m *MockPokemonImageService) RecordPrediction(ctx context.Context, id, outcome string) (*pokemonimages.PokemonImage, error) {
	args := m.Called(ctx, id, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokemonimages.PokemonImage), args.Error(1)
}

func (m *MockPokemonImageService) Delete(ctx context.Context, accountID uint, id string) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

// newTestContext builds a gin context for a request whose body is JSON-encoded from body
func newTestContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// withAccount authenticates c as account the way AuthMiddleware does
func withAccount(c *gin.Context, account *accounts.Account) {
	c.Set(currentAccountKey, account)
}

func testAccount() *accounts.Account {
	return &accounts.Account{
		ID:             7,
		Username:       "ash",
		Email:          "ash@pallet.town",
		HashedPassword: "hashed-password",
		HashedSalt:     "hashed-salt",
		IsVerified:     true,
		OTPSecret:      "JBSWY3DPEHPK3PXP",
	}
}
