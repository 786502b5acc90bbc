//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/pokemonimages"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonImageSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	_, ash := CreateTestAccount(t, tc, "ash")
	_, misty := CreateTestAccount(t, tc, "misty")

	pikachu := CreateTestPokemonImage(t, tc, ash, "pikachu")
	CreateTestPokemonImage(t, tc, ash, "bulbasaur")
	CreateTestPokemonImage(t, tc, misty, "psyduck")

	t.Run("List by profile", func(t *testing.T) {
		got, err := tc.PokemonImageRepo.List(ctx, &pokemonimages.PokemonImageQuery{ProfileID: ash.ID, SortBy: "name"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "bulbasaur", got[0].Name)
		assert.Equal(t, "pikachu", got[1].Name)
	})

	t.Run("List by name", func(t *testing.T) {
		got, err := tc.PokemonImageRepo.List(ctx, &pokemonimages.PokemonImageQuery{Name: "duck"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, misty.ID, got[0].ProfileID)
	})

	t.Run("List without query", func(t *testing.T) {
		got, err := tc.PokemonImageRepo.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("UpdateNickname", func(t *testing.T) {
		require.NoError(t, tc.PokemonImageRepo.UpdateNickname(ctx, pikachu.ID, "sparky"))

		got, err := tc.PokemonImageRepo.GetByID(ctx, pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, "sparky", got.Nickname)

		err = tc.PokemonImageRepo.UpdateNickname(ctx, "00000000-0000-4000-8000-000000000000", "ghost")
		assert.ErrorIs(t, err, pokemonimages.ErrPokemonImageNotFound)
	})

	t.Run("IncrementPrediction", func(t *testing.T) {
		require.NoError(t, tc.PokemonImageRepo.IncrementPrediction(ctx, pikachu.ID, pokemonimages.PredictionCorrect))
		require.NoError(t, tc.PokemonImageRepo.IncrementPrediction(ctx, pikachu.ID, pokemonimages.PredictionCorrect))
		require.NoError(t, tc.PokemonImageRepo.IncrementPrediction(ctx, pikachu.ID, pokemonimages.PredictionWrong))

		got, err := tc.PokemonImageRepo.GetByID(ctx, pikachu.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.CorrectPredicted)
		assert.Equal(t, 2, got.Win)
		assert.Equal(t, 1, got.WrongPredicted)
		assert.Equal(t, 1, got.Loss)
	})

	t.Run("IncrementPrediction rejects unknown outcome", func(t *testing.T) {
		err := tc.PokemonImageRepo.IncrementPrediction(ctx, pikachu.ID, "maybe")
		assert.ErrorIs(t, err, pokemonimages.ErrInvalidPrediction)
	})

	t.Run("IncrementPrediction missing image", func(t *testing.T) {
		err := tc.PokemonImageRepo.IncrementPrediction(ctx, uuid.NewString(), pokemonimages.PredictionWrong)
		assert.ErrorIs(t, err, pokemonimages.ErrPokemonImageNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, tc.PokemonImageRepo.Delete(ctx, pikachu.ID))

		_, err := tc.PokemonImageRepo.GetByID(ctx, pikachu.ID)
		assert.ErrorIs(t, err, pokemonimages.ErrPokemonImageNotFound)

		assert.ErrorIs(t, tc.PokemonImageRepo.Delete(ctx, pikachu.ID), pokemonimages.ErrPokemonImageNotFound)
	})
}

func TestPokemonImageSqliteRepository_UpdateNicknameAfterConcurrentPrediction(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	_, profile := CreateTestAccount(t, tc, "ash")
	image := CreateTestPokemonImage(t, tc, profile, "pikachu")

	stale, err := tc.PokemonImageRepo.GetByID(ctx, image.ID)
	require.NoError(t, err)

	require.NoError(t, tc.PokemonImageRepo.IncrementPrediction(ctx, image.ID, pokemonimages.PredictionCorrect))
	require.NoError(t, tc.PokemonImageRepo.UpdateNickname(ctx, stale.ID, "sparky"))

	got, err := tc.PokemonImageRepo.GetByID(ctx, image.ID)
	require.NoError(t, err)
	assert.Equal(t, "sparky", got.Nickname)
	assert.Equal(t, 1, got.CorrectPredicted)
	assert.Equal(t, 1, got.Win)
}
