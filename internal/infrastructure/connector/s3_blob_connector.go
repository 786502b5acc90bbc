package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
)

// s3BlobConnector is a BlobConnector backed by an S3 bucket (or any S3 compatible endpoint)
type s3BlobConnector struct {
	client *s3.Client
	bucket string
	logger logger.Logger
}

// NewS3BlobConnector creates a connector for the bucket named by ContainerName.
// Static credentials are used when an access key is configured, the default chain otherwise.
func NewS3BlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (blobs.BlobConnector, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}
	if settings.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3BlobConnector{
		client: client,
		bucket: settings.ContainerName,
		logger: logger,
	}, nil
}

func (c *s3BlobConnector) Upload(ctx context.Context, key string, data []byte, contentType string) (*blobs.Blob, error) {
	b := &blobs.Blob{Key: key, ContentType: contentType, Size: int64(len(data)), DateTimeCreated: time.Now()}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload object '%s': %w", key, err)
	}

	c.logger.Info("Object '", key, "' uploaded to bucket ", c.bucket)
	return b, nil
}

func (c *s3BlobConnector) Download(ctx context.Context, key string) ([]byte, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, blobs.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to download object '%s': %w", key, err)
	}
	defer func() {
		if err := out.Body.Close(); err != nil {
			c.logger.Warn("Failed to close object body: ", err)
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object '%s': %w", key, err)
	}
	return data, nil
}

func (c *s3BlobConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object '%s': %w", key, err)
	}

	c.logger.Info("Object '", key, "' deleted from bucket ", c.bucket)
	return nil
}
