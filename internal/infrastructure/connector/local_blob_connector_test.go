//go:build unit
// +build unit

package connector

import (
	"context"
	"testing"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocalConnector(t *testing.T) blobs.BlobConnector {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	connector, err := NewBlobConnector(context.Background(), &config.BlobConnectorSettings{
		CloudProvider:   config.LocalCloudProvider,
		LocalDir:        t.TempDir(),
		PokemonImageDir: "pokemon_images",
		ProfilePhotoDir: "profile_photos",
	}, logger)
	require.NoError(t, err)
	return connector
}

func TestLocalBlobConnector(t *testing.T) {
	connector := setupLocalConnector(t)
	ctx := context.Background()
	key := blobs.ObjectKey("pokemon_images", "pikachu.png")

	blob, err := connector.Upload(ctx, key, testutil.PNGBytes(), "image/png")
	require.NoError(t, err)
	assert.Equal(t, key, blob.Key)
	assert.Equal(t, int64(len(testutil.PNGBytes())), blob.Size)

	data, err := connector.Download(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testutil.PNGBytes(), data)

	require.NoError(t, connector.Delete(ctx, key))

	_, err = connector.Download(ctx, key)
	assert.ErrorIs(t, err, blobs.ErrBlobNotFound)

	assert.NoError(t, connector.Delete(ctx, key), "deleting twice is fine")
}

func TestLocalBlobConnector_RejectsTraversal(t *testing.T) {
	connector := setupLocalConnector(t)
	ctx := context.Background()

	_, err := connector.Upload(ctx, "../outside.png", []byte("x"), "")
	assert.Error(t, err)

	_, err = connector.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)
}

func TestNewBlobConnector_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewBlobConnector(context.Background(), &config.BlobConnectorSettings{
		CloudProvider:   config.AzureCloudProvider,
		PokemonImageDir: "p",
		ProfilePhotoDir: "q",
	}, logger)
	assert.Error(t, err)
}
