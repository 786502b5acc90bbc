package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewMultipartBody builds a multipart request body holding a single file under field
// plus any plain form values. It returns the body and its Content-Type header.
func NewMultipartBody(t *testing.T, field, fileName string, content []byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}

	if field != "" {
		part, err := writer.CreateFormFile(field, fileName)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// PNGBytes returns a minimal payload carrying the PNG signature
func PNGBytes() []byte {
	return []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
}
