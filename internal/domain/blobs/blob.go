package blobs

import (
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

// Blob describes an object held by a BlobConnector
type Blob struct {
	Key             string `validate:"required,min=1,max=1024"`
	ContentType     string `validate:"omitempty,max=100"`
	Size            int64  `validate:"gte=0"`
	DateTimeCreated time.Time
}

// Validate for validating Blob struct
func (b *Blob) Validate() error {
	return validators.ValidateStruct(b)
}

// ObjectKey joins a storage directory and a file name into a slash separated key
func ObjectKey(dir, name string) string {
	return path.Join(strings.Trim(dir, "/"), name)
}

// ErrNotAnImage is returned for uploads whose content is not a recognised image format
var ErrNotAnImage = errors.New("uploaded file is not an image")

// DetectImageContentType sniffs data and accepts only image/* payloads
func DetectImageContentType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotAnImage
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	return contentType, nil
}
