package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploads on the local filesystem under a base path and
// serves them through a URL prefix.
type LocalStorage struct {
	basePath string
	baseURL  string
	maxSize  int64
}

func NewLocalStorage(basePath, baseURL string, maxSize int64) (*LocalStorage, error) {
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
		maxSize:  maxSize,
	}, nil
}

// BasePath is the directory uploads are written to, for static serving.
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

func (l *LocalStorage) Save(ctx context.Context, request *SaveRequest) (*StoredFile, error) {
	if l.maxSize > 0 && request.Size > l.maxSize {
		return nil, ErrFileTooLarge
	}

	filePath := filepath.Join(l.basePath, request.Key)

	dir := filepath.Dir(filePath)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = request.Reader
	if l.maxSize > 0 {
		// Guard against callers passing an understated size.
		reader = io.LimitReader(request.Reader, l.maxSize+1)
	}

	size, err := io.Copy(file, reader)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if l.maxSize > 0 && size > l.maxSize {
		os.Remove(filePath)
		return nil, ErrFileTooLarge
	}

	return &StoredFile{
		Key:         request.Key,
		URL:         l.URL(request.Key),
		Size:        size,
		ContentType: request.ContentType,
	}, nil
}

// Delete removes a stored file. The key may be either a bare object key or a
// full URL previously returned by Save.
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	key = l.stripBaseURL(key)
	filePath := filepath.Join(l.basePath, key)
	return os.Remove(filePath)
}

func (l *LocalStorage) URL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(l.baseURL, "/"), key)
}

func (l *LocalStorage) stripBaseURL(key string) string {
	prefix := strings.TrimRight(l.baseURL, "/") + "/"
	if strings.HasPrefix(key, prefix) {
		return strings.TrimPrefix(key, prefix)
	}
	return key
}
