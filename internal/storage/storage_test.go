package storage

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"docsearch/internal/config"
)

func TestCleanKey(t *testing.T) {
	assert.Equal(t, "documents/a.pdf", cleanKey("/documents/a.pdf"))
	assert.Equal(t, "documents/a.pdf", cleanKey("documents/a.pdf"))
	assert.Equal(t, "a.pdf", cleanKey("../../a.pdf"))
	assert.Equal(t, "documents/a.pdf", cleanKey("documents//x/../a.pdf"))
}

func TestTranslate(t *testing.T) {
	notFound := minio.ErrorResponse{StatusCode: http.StatusNotFound, Code: "NoSuchKey", Key: "documents/x.pdf"}
	assert.ErrorIs(t, translate(notFound), ErrObjectNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, translate(other))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		msg  string
	}{
		{"missing endpoint", config.MinIOConfig{}, "endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
