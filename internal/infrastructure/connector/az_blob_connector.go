package connector

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
)

// azureBlobConnector is a BlobConnector backed by an Azure Storage container
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a new azureBlobConnector instance using a connection string.
// It creates the container if it does not exist yet.
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (blobs.BlobConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (abc *azureBlobConnector) Upload(ctx context.Context, key string, data []byte, contentType string) (*blobs.Blob, error) {
	b := &blobs.Blob{Key: key, ContentType: contentType, Size: int64(len(data)), DateTimeCreated: time.Now()}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}

	if _, err := abc.client.UploadBuffer(ctx, abc.containerName, key, data, opts); err != nil {
		return nil, fmt.Errorf("failed to upload blob '%s': %w", key, err)
	}

	abc.logger.Info("Blob '", key, "' uploaded successfully")
	return b, nil
}

func (abc *azureBlobConnector) Download(ctx context.Context, key string) ([]byte, error) {
	resp, err := abc.client.DownloadStream(ctx, abc.containerName, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, blobs.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to download blob '%s': %w", key, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			abc.logger.Warn("Failed to close blob stream: ", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob '%s': %w", key, err)
	}

	abc.logger.Info("Blob '", key, "' downloaded successfully")
	return data, nil
}

func (abc *azureBlobConnector) Delete(ctx context.Context, key string) error {
	_, err := abc.client.DeleteBlob(ctx, abc.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob '%s': %w", key, err)
	}

	abc.logger.Info("Blob '", key, "' deleted successfully")
	return nil
}
