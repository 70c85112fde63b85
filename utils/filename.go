package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateUniqueFilename returns a collision-free name for a staged
// upload, keeping the original base name and extension readable.
func GenerateUniqueFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	name := strings.TrimSuffix(filepath.Base(originalName), ext)
	return name + "_" + uuid.NewString() + ext
}
