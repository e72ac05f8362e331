package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxSize int64) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "/uploads", maxSize)
	require.NoError(t, err)
	return s
}

func TestSaveAndDelete(t *testing.T) {
	s := newTestStorage(t, 1024)

	stored, err := s.Save(context.Background(), &SaveRequest{
		Key:         "a.jpg",
		Reader:      strings.NewReader("fake image bytes"),
		ContentType: "image/jpeg",
		Size:        16,
	})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/a.jpg", stored.URL)
	assert.Equal(t, int64(16), stored.Size)

	_, err = os.Stat(filepath.Join(s.BasePath(), "a.jpg"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), "a.jpg"))
	_, err = os.Stat(filepath.Join(s.BasePath(), "a.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestSave_RejectsOversizedDeclaredSize(t *testing.T) {
	s := newTestStorage(t, 8)

	_, err := s.Save(context.Background(), &SaveRequest{
		Key:    "big.bin",
		Reader: strings.NewReader("x"),
		Size:   9,
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSave_RejectsOversizedStream(t *testing.T) {
	s := newTestStorage(t, 8)

	// Declared size lies; the stream itself is over the cap.
	_, err := s.Save(context.Background(), &SaveRequest{
		Key:    "big.bin",
		Reader: strings.NewReader("0123456789"),
		Size:   4,
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Nothing left behind.
	_, statErr := os.Stat(filepath.Join(s.BasePath(), "big.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete_AcceptsFullURL(t *testing.T) {
	s := newTestStorage(t, 0)

	_, err := s.Save(context.Background(), &SaveRequest{
		Key:    "b.mp4",
		Reader: strings.NewReader("video"),
		Size:   5,
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), "/uploads/b.mp4"))
	_, err = os.Stat(filepath.Join(s.BasePath(), "b.mp4"))
	assert.True(t, os.IsNotExist(err))
}
