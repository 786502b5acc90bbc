package connector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/blobs"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
)

// localBlobConnector keeps objects as files below a root directory
type localBlobConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalBlobConnector creates the root directory when missing
func NewLocalBlobConnector(settings *config.BlobConnectorSettings, logger logger.Logger) (blobs.BlobConnector, error) {
	root, err := filepath.Abs(settings.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve local dir: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create local dir: %w", err)
	}

	return &localBlobConnector{root: root, logger: logger}, nil
}

// path maps key below root and rejects keys escaping it
func (c *localBlobConnector) path(key string) (string, error) {
	p := filepath.Join(c.root, filepath.FromSlash(key))
	if p == c.root || !strings.HasPrefix(p, c.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object key: %s", key)
	}
	return p, nil
}

func (c *localBlobConnector) Upload(_ context.Context, key string, data []byte, contentType string) (*blobs.Blob, error) {
	b := &blobs.Blob{Key: key, ContentType: contentType, Size: int64(len(data)), DateTimeCreated: time.Now()}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	p, err := c.path(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory for '%s': %w", key, err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write '%s': %w", key, err)
	}

	c.logger.Info("File '", key, "' stored locally")
	return b, nil
}

func (c *localBlobConnector) Download(_ context.Context, key string) ([]byte, error) {
	p, err := c.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, blobs.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read '%s': %w", key, err)
	}
	return data, nil
}

func (c *localBlobConnector) Delete(_ context.Context, key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete '%s': %w", key, err)
	}

	c.logger.Info("File '", key, "' deleted locally")
	return nil
}
