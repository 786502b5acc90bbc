//go:build integration
// +build integration

package persistence

import (
	"context"
	"os"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a local postgres (docker compose up postgres); skipped otherwise.
func TestRepositories_Postgres(t *testing.T) {
	if os.Getenv("GGEA_TEST_POSTGRES") == "" {
		t.Skip("GGEA_TEST_POSTGRES not set")
	}

	tc := SetupTestDB(t, config.PostgresDbType)
	ctx := context.Background()

	account, profile := CreateTestAccount(t, tc, "oak")
	image := CreateTestPokemonImage(t, tc, profile, "eevee")

	require.NoError(t, tc.PokemonImageRepo.IncrementPrediction(ctx, image.ID, pokemonimages.PredictionCorrect))

	got, err := tc.PokemonImageRepo.GetByID(ctx, image.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Win)

	require.NoError(t, tc.AccountRepo.Delete(ctx, account.ID))
	_, err = tc.PokemonImageRepo.GetByID(ctx, image.ID)
	assert.ErrorIs(t, err, pokemonimages.ErrPokemonImageNotFound)
}
