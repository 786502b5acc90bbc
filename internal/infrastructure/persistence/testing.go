//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	AccountRepo      accounts.AccountRepository
	ProfileRepo      profiles.ProfileRepository
	PokemonImageRepo pokemonimages.PokemonImageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	accountRepo, err := NewGormAccountRepository(db, logger)
	require.NoError(t, err, "Failed to create account repository")

	profileRepo, err := NewGormProfileRepository(db, logger)
	require.NoError(t, err, "Failed to create profile repository")

	pokemonImageRepo, err := NewGormPokemonImageRepository(db, logger)
	require.NoError(t, err, "Failed to create pokemon image repository")

	return &TestContext{
		DB:               db,
		AccountRepo:      accountRepo,
		ProfileRepo:      profileRepo,
		PokemonImageRepo: pokemonImageRepo,
	}
}

// CreateTestAccount persists a verified account with a matching profile
func CreateTestAccount(t *testing.T, tc *TestContext, username string) (*accounts.Account, *profiles.Profile) {
	t.Helper()
	ctx := context.Background()

	account := &accounts.Account{
		Username:         username,
		Email:            username + "@pallet.town",
		HashedPassword:   "hashed-password",
		HashedSalt:       "hashed-salt",
		IsVerified:       true,
		VerificationCode: "123456",
	}
	require.NoError(t, tc.AccountRepo.Create(ctx, account))

	profile := profiles.NewProfile(account.ID)
	require.NoError(t, tc.ProfileRepo.Create(ctx, profile))

	return account, profile
}

// CreateTestPokemonImage persists a pokemon image for profile
func CreateTestPokemonImage(t *testing.T, tc *TestContext, profile *profiles.Profile, name string) *pokemonimages.PokemonImage {
	t.Helper()

	image := &pokemonimages.PokemonImage{
		ID:        uuid.NewString(),
		FileName:  uuid.NewString(),
		Name:      name,
		Nickname:  name,
		ProfileID: profile.ID,
	}
	require.NoError(t, tc.PokemonImageRepo.Create(context.Background(), image))
	return image
}
