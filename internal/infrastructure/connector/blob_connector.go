package connector

import (
	"context"
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
)

// NewBlobConnector returns the BlobConnector for the configured cloud provider
func NewBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (blobs.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.CloudProvider {
	case config.AzureCloudProvider:
		return NewAzureBlobConnector(ctx, settings, logger)
	case config.AwsCloudProvider:
		return NewS3BlobConnector(ctx, settings, logger)
	case config.LocalCloudProvider:
		return NewLocalBlobConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}
}
