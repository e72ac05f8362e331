package storage

import (
	"context"
	"errors"
	"io"
)

// ErrFileTooLarge is returned when an upload exceeds the provider's size cap.
var ErrFileTooLarge = errors.New("file too large")

// Provider stores uploaded media and serves it back by URL. Implementations
// enforce their configured maximum file size.
type Provider interface {
	Save(ctx context.Context, request *SaveRequest) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type SaveRequest struct {
	Key         string
	Reader      io.Reader
	ContentType string
	Size        int64
}

type StoredFile struct {
	Key         string
	URL         string
	Size        int64
	ContentType string
}
