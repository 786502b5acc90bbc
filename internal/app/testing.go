//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/connector"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestPassword    = "Pikachu#2024"
	TestJWTSecret   = "integration-test-jwt-secret"
	TestHashingSalt = "integration-test-salt"
)

// recordingMailer keeps the last verification code sent to each address
type recordingMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *recordingMailer) SendVerificationCode(_ context.Context, email, _ string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService         accounts.AuthService
	AccountService      accounts.AccountService
	ProfileService      profiles.ProfileService
	PokemonImageService pokemonimages.PokemonImageService

	OTPManager    auth.OTPManager
	BlobConnector blobs.BlobConnector
	BlobSettings  *config.BlobConnectorSettings

	// Infrastructure
	DBContext *persistence.TestContext

	mailer *recordingMailer
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup local blob connector
	blobSettings := &config.BlobConnectorSettings{
		CloudProvider:   config.LocalCloudProvider,
		LocalDir:        t.TempDir(),
		PokemonImageDir: "pokemon_images",
		ProfilePhotoDir: "profile_photos",
	}
	blobConnector, err := connector.NewLocalBlobConnector(blobSettings, logger)
	require.NoError(t, err, "Failed to create blob connector")

	// Setup security
	securitySettings := config.DefaultRestConfig().Security
	securitySettings.JWTSecretKey = TestJWTSecret
	securitySettings.HashingSalt = TestHashingSalt

	passwordManager, err := cryptography.NewPasswordManager(&securitySettings, logger)
	require.NoError(t, err, "Failed to create password manager")

	tokenManager, err := cryptography.NewJWTManager(&securitySettings)
	require.NoError(t, err, "Failed to create JWT manager")

	otpManager := cryptography.NewOTPManager(securitySettings.OTPIssuer)

	mailer := &recordingMailer{codes: make(map[string]string)}

	// Setup services
	authService, err := NewAuthService(dbContext.AccountRepo, dbContext.ProfileRepo, passwordManager, tokenManager,
		otpManager, mailer, securitySettings.OTPLoginWindow, logger)
	require.NoError(t, err, "Failed to create auth service")

	accountService, err := NewAccountService(dbContext.AccountRepo, dbContext.ProfileRepo, dbContext.PokemonImageRepo,
		blobConnector, passwordManager, tokenManager, blobSettings.PokemonImageDir, logger)
	require.NoError(t, err, "Failed to create account service")

	profileService, err := NewProfileService(dbContext.ProfileRepo, blobConnector, blobSettings.ProfilePhotoDir, logger)
	require.NoError(t, err, "Failed to create profile service")

	pokemonImageService, err := NewPokemonImageService(dbContext.PokemonImageRepo, dbContext.ProfileRepo,
		blobConnector, blobSettings.PokemonImageDir, logger)
	require.NoError(t, err, "Failed to create pokemon image service")

	return &TestServices{
		AuthService:         authService,
		AccountService:      accountService,
		ProfileService:      profileService,
		PokemonImageService: pokemonImageService,
		OTPManager:          otpManager,
		BlobConnector:       blobConnector,
		BlobSettings:        blobSettings,
		DBContext:           dbContext,
		mailer:              mailer,
	}
}

// VerificationCode waits for pending verification mails and returns the code sent to email
func (ts *TestServices) VerificationCode(t *testing.T, email string) string {
	t.Helper()

	require.NoError(t, ts.AuthService.Close(context.Background()))

	ts.mailer.mu.Lock()
	defer ts.mailer.mu.Unlock()
	code, ok := ts.mailer.codes[email]
	require.True(t, ok, "no verification code sent to %s", email)
	return code
}

// SignupVerified signs up and verifies an account with TestPassword
func (ts *TestServices) SignupVerified(t *testing.T, username string) *accounts.Account {
	t.Helper()
	ctx := context.Background()

	email := username + "@pallet.town"
	_, _, err := ts.AuthService.Signup(ctx, username, email, TestPassword)
	require.NoError(t, err)

	account, err := ts.AuthService.VerifyAccount(ctx, email, ts.VerificationCode(t, email))
	require.NoError(t, err)
	return account
}
