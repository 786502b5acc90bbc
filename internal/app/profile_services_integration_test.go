//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/profiles"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/testutil"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestProfileService_ListAndGet(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	services.SignupVerified(t, "ash")
	services.SignupVerified(t, "misty")

	list, err := services.ProfileService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)

	profile, err := services.ProfileService.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, list[0].AccountID, profile.AccountID)

	_, err = services.ProfileService.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestProfileService_UpdateByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	ash := services.SignupVerified(t, "ash")
	misty := services.SignupVerified(t, "misty")

	profile, err := services.DBContext.ProfileRepo.GetByAccountID(ctx, ash.ID)
	require.NoError(t, err)

	_, err = services.ProfileService.UpdateByID(ctx, misty.ID, profile.ID, &profiles.ProfileUpdate{Win: intPtr(1)})
	assert.ErrorIs(t, err, profiles.ErrNotOwner)

	_, err = services.ProfileService.UpdateByID(ctx, ash.ID, profile.ID, &profiles.ProfileUpdate{Loss: intPtr(-1)})
	assert.ErrorIs(t, err, validators.ErrValidation)

	updated, err := services.ProfileService.UpdateByID(ctx, ash.ID, profile.ID, &profiles.ProfileUpdate{
		FirstName: stringPtr("Ash"),
		Win:       intPtr(3),
		MMR:       intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ash", updated.FirstName)
	assert.Equal(t, "", updated.LastName)
	assert.Equal(t, 3, updated.Win)
	assert.Equal(t, 0, updated.MMR)

	stored, err := services.ProfileService.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.MMR)
}

func TestProfileService_UploadPhoto(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	ash := services.SignupVerified(t, "ash")

	profile, err := services.DBContext.ProfileRepo.GetByAccountID(ctx, ash.ID)
	require.NoError(t, err)

	_, err = services.ProfileService.UploadPhoto(ctx, ash.ID, profile.ID, "notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, blobs.ErrNotAnImage)

	first, err := services.ProfileService.UploadPhoto(ctx, ash.ID, profile.ID, "me.PNG", testutil.PNGBytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Photo, "profile_photos/"))
	assert.True(t, strings.HasSuffix(first.Photo, ".png"))
	firstKey := first.Photo

	data, err := services.BlobConnector.Download(ctx, firstKey)
	require.NoError(t, err)
	assert.Equal(t, testutil.PNGBytes(), data)

	second, err := services.ProfileService.UploadPhoto(ctx, ash.ID, profile.ID, "me.png", testutil.PNGBytes())
	require.NoError(t, err)
	assert.NotEqual(t, firstKey, second.Photo)

	_, err = services.BlobConnector.Download(ctx, firstKey)
	assert.ErrorIs(t, err, blobs.ErrBlobNotFound)
}
