package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// GenerateUniqueFilename builds a collision-resistant object key from the
// original filename, keeping its extension.
func GenerateUniqueFilename(originalFilename string) string {
	ext := GetFileExtension(originalFilename)
	stamp := time.Now().Unix()
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	return fmt.Sprintf("%d_%s%s", stamp, id, ext)
}

func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}
